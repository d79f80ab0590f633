package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelStatusLogQueryIsNotConstructed = errors.New(
		"GetParcelStatusLogQuery must be created via NewGetParcelStatusLogQuery constructor",
	)
)

type GetParcelStatusLogQuery struct {
	caller   kernel.Identity
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelStatusLogQuery(caller kernel.Identity, parcelID kernel.UUID) (GetParcelStatusLogQuery, error) {
	if err := errors.Join(caller.Validate(), parcelID.Validate()); err != nil {
		return GetParcelStatusLogQuery{}, err
	}
	return GetParcelStatusLogQuery{caller: caller, parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelStatusLogQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatusLogQueryIsNotConstructed)
}

func (q GetParcelStatusLogQuery) Caller() kernel.Identity {
	return q.caller
}

func (q GetParcelStatusLogQuery) ParcelID() kernel.UUID {
	return q.parcelID
}
