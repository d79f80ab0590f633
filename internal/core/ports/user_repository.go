package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
)

// UserRepository is the identity directory.
type UserRepository interface {
	// Add stores a new account. A duplicate email is reported as
	// *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, u *user.User) error

	Update(ctx context.Context, u *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByEmail looks the account up by its normalized email.
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
