package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
)

type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(caller kernel.Identity, parcelID kernel.UUID) (ConfirmDeliveryCommand, error) {
	if err := errors.Join(caller.Validate(), parcelID.Validate()); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		caller:   caller,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) Caller() kernel.Identity {
	return c.caller
}

func (c ConfirmDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
