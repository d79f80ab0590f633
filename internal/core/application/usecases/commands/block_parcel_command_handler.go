package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

type BlockParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	now        Clock
}

func NewBlockParcelCommandHandler(uowFactory ParcelUoWFactory, now Clock) BlockParcelCommandHandler {
	return BlockParcelCommandHandler{uowFactory: uowFactory, now: now}
}

func (h BlockParcelCommandHandler) Handle(ctx context.Context, cmd BlockParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	caller := cmd.Caller()
	if err := caller.RequireRole(kernel.RoleAdmin); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(), nil,
		func(p *parcel.Parcel) error { return p.Block(caller.ID(), h.now()) },
	)
}
