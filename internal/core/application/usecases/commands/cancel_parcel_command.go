package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCancelParcelCommandIsNotConstructed = errors.New(
		"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
	)
)

type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelParcelCommand(caller kernel.Identity, parcelID kernel.UUID) (CancelParcelCommand, error) {
	if err := errors.Join(caller.Validate(), parcelID.Validate()); err != nil {
		return CancelParcelCommand{}, err
	}

	return CancelParcelCommand{
		caller:   caller,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

func (c CancelParcelCommand) Caller() kernel.Identity {
	return c.caller
}

func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
