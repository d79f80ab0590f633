package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetParcelQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle refuses a blocked parcel to everyone, administrators included,
// before ownership is looked at.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	view, err := findParcelByID(ctx, h.db, query.ParcelID())
	if err != nil {
		return ParcelView{}, err
	}

	if err = parcel.AuthorizeView(query.Caller(), view.SenderID, view.ReceiverID, view.IsBlocked); err != nil {
		return ParcelView{}, err
	}

	return view, nil
}

func findParcelByID(ctx context.Context, db *gorm.DB, id kernel.UUID) (ParcelView, error) {
	views, err := findParcels(ctx, db, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", id.Bytes())
	})
	if err != nil {
		return ParcelView{}, err
	}
	if len(views) == 0 {
		return ParcelView{}, errs.NewObjectNotFoundError("parcel", id.String())
	}
	return views[0], nil
}
