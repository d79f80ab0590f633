package kernel

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// Role is the account role that decides which operations a caller may run.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSender   Role = "sender"
	RoleReceiver Role = "receiver"
)

// ParseRole accepts the lowercase role names used on the wire.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleSender, RoleReceiver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// IsSelfRegistrable reports whether an account with this role may be created
// through public registration. Administrators are provisioned out of band.
func (r Role) IsSelfRegistrable() bool {
	return r == RoleSender || r == RoleReceiver
}
