package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

// UserView never carries the password hash.
type UserView struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      kernel.Role
	IsBlocked bool
	CreatedAt time.Time
}

type ListUsersQuery struct {
	caller kernel.Identity

	guard guard.ConstructorGuard
}

func NewListUsersQuery(caller kernel.Identity) (ListUsersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Caller() kernel.Identity {
	return q.caller
}

// GetUserQuery resolves an account by id. The access gateway uses it to
// refuse tokens of deleted or blocked users.
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}
