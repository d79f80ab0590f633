package commands

import (
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     kernel.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand accepts only roles that may sign themselves up.
func NewRegisterUserCommand(name, email, password, role string) (RegisterUserCommand, error) {
	var errList []error
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(email) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}

	r, err := kernel.ParseRole(role)
	if err == nil && !r.IsSelfRegistrable() {
		err = errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q cannot be chosen at registration", role))
	}
	errList = append(errList, err)

	if err = errors.Join(errList...); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		name:     strings.TrimSpace(name),
		email:    user.NormalizeEmail(email),
		password: password,
		role:     r,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() kernel.Role {
	return c.role
}
