package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

type GetParcelStatusLogQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelStatusLogQueryHandler(db *gorm.DB) GetParcelStatusLogQueryHandler {
	return GetParcelStatusLogQueryHandler{db: db}
}

// Handle returns the ordered history. Blocked parcels stay readable to their
// parties and administrators here.
func (h GetParcelStatusLogQueryHandler) Handle(
	ctx context.Context,
	query GetParcelStatusLogQuery,
) ([]TrackingEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	view, err := findParcelByID(ctx, h.db, query.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = parcel.AuthorizeHistory(query.Caller(), view.SenderID, view.ReceiverID); err != nil {
		return nil, err
	}

	return view.TrackingEvents, nil
}
