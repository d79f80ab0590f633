package kernel

import (
	"errors"

	"parceltrack/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed is returned by Identity.Validate for a zero value.
var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// ReasonInsufficientRole is the access denied reason reported by RequireRole.
const ReasonInsufficientRole = "insufficient role"

// Identity is the caller resolved by the access gateway. It is passed to use
// cases explicitly instead of being read from ambient request state.
type Identity struct {
	id   UUID
	role Role
}

func NewIdentity(id UUID, role Role) (Identity, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Identity{}, err
	}
	return Identity{id: id, role: role}, nil
}

func (i Identity) ID() UUID {
	return i.id
}

func (i Identity) Role() Role {
	return i.role
}

func (i Identity) IsAdmin() bool {
	return i.role == RoleAdmin
}

func (i Identity) Validate() error {
	if i.id.Validate() != nil || i.role.Validate() != nil {
		return ErrIdentityIsNotConstructed
	}
	return nil
}

// RequireRole fails with an access denied error unless the identity holds
// one of the given roles.
func (i Identity) RequireRole(roles ...Role) error {
	if err := i.Validate(); err != nil {
		return err
	}
	for _, r := range roles {
		if i.role == r {
			return nil
		}
	}
	return errs.NewAccessDeniedError(ReasonInsufficientRole)
}
