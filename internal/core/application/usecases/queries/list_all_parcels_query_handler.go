package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type ListAllParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListAllParcelsQueryHandler(db *gorm.DB) ListAllParcelsQueryHandler {
	return ListAllParcelsQueryHandler{db: db}
}

func (h ListAllParcelsQueryHandler) Handle(ctx context.Context, query ListAllParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Caller().RequireRole(kernel.RoleAdmin); err != nil {
		return nil, err
	}

	return findParcels(ctx, h.db, func(tx *gorm.DB) *gorm.DB {
		if status, ok := query.Status(); ok {
			tx = tx.Where("status = ?", int(status))
		}
		if from, ok := query.From(); ok {
			tx = tx.Where("created_at >= ?", from)
		}
		if until, exclusive, ok := query.Until(); ok {
			if exclusive {
				tx = tx.Where("created_at < ?", until)
			} else {
				tx = tx.Where("created_at <= ?", until)
			}
		}
		return tx
	})
}
