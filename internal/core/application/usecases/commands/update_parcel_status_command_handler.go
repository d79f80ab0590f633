package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	now        Clock
}

func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory, now Clock) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{uowFactory: uowFactory, now: now}
}

func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	caller := cmd.Caller()
	if err := caller.RequireRole(kernel.RoleAdmin); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(), nil,
		func(p *parcel.Parcel) error {
			return p.UpdateStatus(cmd.Status(), caller.ID(), h.now(), cmd.Location(), cmd.Note())
		},
	)
}
