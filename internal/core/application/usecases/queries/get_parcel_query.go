package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery reads one parcel on behalf of an authenticated caller.
type GetParcelQuery struct {
	caller   kernel.Identity
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelQuery(caller kernel.Identity, parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := errors.Join(caller.Validate(), parcelID.Validate()); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{caller: caller, parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) Caller() kernel.Identity {
	return q.caller
}

func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}
