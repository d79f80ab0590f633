package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	now        Clock
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	now Clock,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, hasher: hasher, now: now}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return createUser(ctx, h.uowFactory, h.hasher, h.now, cmd.Name(), cmd.Email(), cmd.Password(), cmd.Role())
}

// createUser stores a new account unless the email is taken.
func createUser(
	ctx context.Context,
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	now Clock,
	name, email, password string,
	role kernel.Role,
) (*user.User, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("email", email)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), name, email, hash, role, now())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
