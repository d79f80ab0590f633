// Package user models the accounts of the identity directory: who a caller
// is, which role they hold and whether an administrator has blocked them.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account. The password is only ever held as a hash.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         kernel.Role
	isBlocked    bool
	createdAt    time.Time

	isConstructed bool
}

func NewUser(id kernel.UUID, name, email, passwordHash string, role kernel.Role, at time.Time) (*User, error) {
	u := &User{isConstructed: true, createdAt: at.UTC()}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role

	return u, nil
}

// RestoreUser rebuilds a stored account.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role kernel.Role,
	isBlocked bool,
	createdAt time.Time,
) (*User, error) {
	u, err := NewUser(id, name, email, passwordHash, role, createdAt)
	if err != nil {
		return nil, err
	}
	u.isBlocked = isBlocked
	return u, nil
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() kernel.Role {
	return u.role
}

func (u *User) IsBlocked() bool {
	return u.isBlocked
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Identity is what the access gateway attaches to an authenticated request.
func (u *User) Identity() kernel.Identity {
	identity, _ := kernel.NewIdentity(u.id, u.role)
	return identity
}

func (u *User) Block() {
	u.isBlocked = true
}

func (u *User) Unblock() {
	u.isBlocked = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}
