package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

type ConfirmDeliveryCommandHandler struct {
	uowFactory ParcelUoWFactory
	now        Clock
}

func NewConfirmDeliveryCommandHandler(uowFactory ParcelUoWFactory, now Clock) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{uowFactory: uowFactory, now: now}
}

func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	caller := cmd.Caller()
	if err := caller.RequireRole(kernel.RoleReceiver); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(),
		func(p *parcel.Parcel) bool { return p.IsAddressedTo(caller.ID()) },
		func(p *parcel.Parcel) error { return p.ConfirmDelivery(caller.ID(), h.now()) },
	)
}
