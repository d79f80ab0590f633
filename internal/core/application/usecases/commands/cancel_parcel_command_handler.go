package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	now        Clock
}

func NewCancelParcelCommandHandler(uowFactory ParcelUoWFactory, now Clock) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle cancels a parcel on behalf of its sender. Parcels sent by someone
// else are reported as not found.
func (h CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	caller := cmd.Caller()
	if err := caller.RequireRole(kernel.RoleSender); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(),
		func(p *parcel.Parcel) bool { return p.IsSentBy(caller.ID()) },
		func(p *parcel.Parcel) error { return p.Cancel(caller.ID(), h.now()) },
	)
}
