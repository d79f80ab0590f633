package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListSenderParcelsQueryIsNotConstructed = errors.New(
		"ListSenderParcelsQuery must be created via NewListSenderParcelsQuery constructor",
	)
	ErrListReceiverParcelsQueryIsNotConstructed = errors.New(
		"ListReceiverParcelsQuery must be created via NewListReceiverParcelsQuery constructor",
	)
)

// ListSenderParcelsQuery lists the parcels the caller has sent.
type ListSenderParcelsQuery struct {
	caller kernel.Identity

	guard guard.ConstructorGuard
}

func NewListSenderParcelsQuery(caller kernel.Identity) (ListSenderParcelsQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListSenderParcelsQuery{}, err
	}
	return ListSenderParcelsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListSenderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListSenderParcelsQueryIsNotConstructed)
}

func (q ListSenderParcelsQuery) Caller() kernel.Identity {
	return q.caller
}

// ListReceiverParcelsQuery lists the parcels addressed to the caller.
type ListReceiverParcelsQuery struct {
	caller kernel.Identity

	guard guard.ConstructorGuard
}

func NewListReceiverParcelsQuery(caller kernel.Identity) (ListReceiverParcelsQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListReceiverParcelsQuery{}, err
	}
	return ListReceiverParcelsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListReceiverParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListReceiverParcelsQueryIsNotConstructed)
}

func (q ListReceiverParcelsQuery) Caller() kernel.Identity {
	return q.caller
}
