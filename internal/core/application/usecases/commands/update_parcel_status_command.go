package commands

import (
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
		"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
	)
)

// UpdateParcelStatusCommand is an administrator move through the transport
// stages. The target status is checked here, before the parcel is loaded.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	parcelID kernel.UUID
	status   parcel.Status
	location string
	note     string

	guard guard.ConstructorGuard
}

func NewUpdateParcelStatusCommand(
	caller kernel.Identity,
	parcelID kernel.UUID,
	status string,
	location string,
	note string,
) (UpdateParcelStatusCommand, error) {
	if err := errors.Join(caller.Validate(), parcelID.Validate()); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	target, err := parcel.ParseStatus(status)
	if err != nil {
		return UpdateParcelStatusCommand{}, err
	}
	if !target.IsAdminSettable() {
		return UpdateParcelStatusCommand{}, fmt.Errorf(
			"%w: %s cannot be set by a status update", parcel.ErrInvalidStatus, target)
	}

	return UpdateParcelStatusCommand{
		caller:   caller,
		parcelID: parcelID,
		status:   target,
		location: strings.TrimSpace(location),
		note:     strings.TrimSpace(note),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) Caller() kernel.Identity {
	return c.caller
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

func (c UpdateParcelStatusCommand) Location() string {
	return c.location
}

func (c UpdateParcelStatusCommand) Note() string {
	return c.note
}
