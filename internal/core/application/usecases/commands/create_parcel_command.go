package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand is a sender's delivery request.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	sender     kernel.Identity
	receiverID kernel.UUID
	details    parcel.Details
	couponCode string

	guard guard.ConstructorGuard
}

func NewCreateParcelCommand(
	sender kernel.Identity,
	receiverID kernel.UUID,
	details parcel.Details,
	couponCode string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		sender:     sender,
		receiverID: receiverID,
		details:    details,
		couponCode: strings.TrimSpace(couponCode),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sender.Validate(),
		receiverID.Validate(),
		parcel.ValidateDetails(details),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) Sender() kernel.Identity {
	return c.sender
}

func (c CreateParcelCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}

func (c CreateParcelCommand) CouponCode() string {
	return c.couponCode
}
