package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrSetUserBlockedCommandIsNotConstructed = errors.New(
		"SetUserBlockedCommand must be created via NewSetUserBlockedCommand constructor",
	)
)

// SetUserBlockedCommand blocks or unblocks an account.
type SetUserBlockedCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Identity
	userID  kernel.UUID
	blocked bool

	guard guard.ConstructorGuard
}

func NewSetUserBlockedCommand(caller kernel.Identity, userID kernel.UUID, blocked bool) (SetUserBlockedCommand, error) {
	if err := errors.Join(caller.Validate(), userID.Validate()); err != nil {
		return SetUserBlockedCommand{}, err
	}

	return SetUserBlockedCommand{
		caller:  caller,
		userID:  userID,
		blocked: blocked,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetUserBlockedCommand) Validate() error {
	return c.guard.Validate(ErrSetUserBlockedCommandIsNotConstructed)
}

func (c SetUserBlockedCommand) Caller() kernel.Identity {
	return c.caller
}

func (c SetUserBlockedCommand) UserID() kernel.UUID {
	return c.userID
}

func (c SetUserBlockedCommand) Blocked() bool {
	return c.blocked
}
