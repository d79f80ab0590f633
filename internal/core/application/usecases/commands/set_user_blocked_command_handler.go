package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
)

type SetUserBlockedCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewSetUserBlockedCommandHandler(uowFactory UserUoWFactory) SetUserBlockedCommandHandler {
	return SetUserBlockedCommandHandler{uowFactory: uowFactory}
}

func (h SetUserBlockedCommandHandler) Handle(ctx context.Context, cmd SetUserBlockedCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Caller().RequireRole(kernel.RoleAdmin); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("user", cmd.UserID().String())
	}
	if err != nil {
		return nil, err
	}

	if cmd.Blocked() {
		u.Block()
	} else {
		u.Unblock()
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
