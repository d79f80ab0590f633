package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type ListSenderParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListSenderParcelsQueryHandler(db *gorm.DB) ListSenderParcelsQueryHandler {
	return ListSenderParcelsQueryHandler{db: db}
}

func (h ListSenderParcelsQueryHandler) Handle(ctx context.Context, query ListSenderParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	caller := query.Caller()
	if err := caller.RequireRole(kernel.RoleSender); err != nil {
		return nil, err
	}

	return findParcels(ctx, h.db, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("sender_id = ?", caller.ID().Bytes())
	})
}

type ListReceiverParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListReceiverParcelsQueryHandler(db *gorm.DB) ListReceiverParcelsQueryHandler {
	return ListReceiverParcelsQueryHandler{db: db}
}

func (h ListReceiverParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListReceiverParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	caller := query.Caller()
	if err := caller.RequireRole(kernel.RoleReceiver); err != nil {
		return nil, err
	}

	return findParcels(ctx, h.db, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("receiver_id = ?", caller.ID().Bytes())
	})
}
