package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

type EnsureAdminCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	now        Clock
}

func NewEnsureAdminCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	now Clock,
) EnsureAdminCommandHandler {
	return EnsureAdminCommandHandler{uowFactory: uowFactory, hasher: hasher, now: now}
}

// Handle reports whether a new administrator account was created. An
// existing account with the same email is left untouched.
func (h EnsureAdminCommandHandler) Handle(ctx context.Context, cmd EnsureAdminCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	_, err := createUser(ctx, h.uowFactory, h.hasher, h.now, cmd.Name(), cmd.Email(), cmd.Password(), kernel.RoleAdmin)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
