package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type TrackParcelQueryHandler struct {
	db *gorm.DB
}

func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle reports blocked and canceled parcels as not found so the public
// endpoint reveals nothing about them.
func (h TrackParcelQueryHandler) Handle(ctx context.Context, query TrackParcelQuery) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	views, err := findParcels(ctx, h.db, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("tracking_id = ?", query.TrackingID())
	})
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	if len(views) == 0 || !parcel.IsPubliclyTrackable(views[0].Status, views[0].IsBlocked) {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.TrackingID())
	}

	view := views[0]
	history := make([]PublicTrackingEvent, 0, len(view.TrackingEvents))
	for _, e := range view.TrackingEvents {
		history = append(history, PublicTrackingEvent{
			Status:    e.Status,
			Timestamp: e.Timestamp,
			Note:      e.Note,
			Location:  e.Location,
		})
	}

	return TrackParcelQueryResponse{
		TrackingID:    view.TrackingID,
		CurrentStatus: view.Status,
		History:       history,
	}, nil
}
