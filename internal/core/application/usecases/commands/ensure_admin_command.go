package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrEnsureAdminCommandIsNotConstructed = errors.New(
		"EnsureAdminCommand must be created via NewEnsureAdminCommand constructor",
	)
)

// EnsureAdminCommand provisions the bootstrap administrator at startup.
type EnsureAdminCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewEnsureAdminCommand(name, email, password string) (EnsureAdminCommand, error) {
	var errList []error
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("admin name"))
	}
	if strings.TrimSpace(email) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("admin email"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("admin password"))
	}
	if err := errors.Join(errList...); err != nil {
		return EnsureAdminCommand{}, err
	}

	return EnsureAdminCommand{
		name:     strings.TrimSpace(name),
		email:    user.NormalizeEmail(email),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EnsureAdminCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminCommandIsNotConstructed)
}

func (c EnsureAdminCommand) Name() string {
	return c.name
}

func (c EnsureAdminCommand) Email() string {
	return c.email
}

func (c EnsureAdminCommand) Password() string {
	return c.password
}
