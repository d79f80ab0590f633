package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrBlockParcelCommandIsNotConstructed = errors.New(
		"BlockParcelCommand must be created via NewBlockParcelCommand constructor",
	)
)

type BlockParcelCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBlockParcelCommand(caller kernel.Identity, parcelID kernel.UUID) (BlockParcelCommand, error) {
	if err := errors.Join(caller.Validate(), parcelID.Validate()); err != nil {
		return BlockParcelCommand{}, err
	}

	return BlockParcelCommand{
		caller:   caller,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c BlockParcelCommand) Validate() error {
	return c.guard.Validate(ErrBlockParcelCommandIsNotConstructed)
}

func (c BlockParcelCommand) Caller() kernel.Identity {
	return c.caller
}

func (c BlockParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
