package commands

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// maxTrackingIDAttempts bounds regeneration after tracking id collisions.
const maxTrackingIDAttempts = 5

var (
	// ErrReceiverInvalid is returned when the receiver does not exist or does
	// not hold the receiver role.
	ErrReceiverInvalid = errors.New("receiver not found or invalid")

	// ErrDuplicateTrackingID is returned when every generated tracking id
	// collided with a stored one.
	ErrDuplicateTrackingID = errors.New("duplicate tracking id")
)

type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
	fees       services.FeeCalculator
	trackingID TrackingIDGenerator
	now        Clock
}

func NewCreateParcelCommandHandler(
	uowFactory UoWFactory,
	fees services.FeeCalculator,
	trackingID TrackingIDGenerator,
	now Clock,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		fees:       fees,
		trackingID: trackingID,
		now:        now,
	}
}

// Handle creates the parcel in Requested status. A tracking id collision
// rolls the attempt back and retries with a fresh id.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Sender().RequireRole(kernel.RoleSender); err != nil {
		return nil, err
	}

	var lastErr error
	for range maxTrackingIDAttempts {
		p, err := h.create(ctx, cmd)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", ErrDuplicateTrackingID, lastErr)
}

func (h CreateParcelCommandHandler) create(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	receiver, err := uow.UserRepository().Get(ctx, cmd.ReceiverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrReceiverInvalid
	}
	if err != nil {
		return nil, err
	}
	if receiver.Role() != kernel.RoleReceiver {
		return nil, ErrReceiverInvalid
	}

	details := cmd.Details()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		h.trackingID.Generate(),
		cmd.Sender().ID(),
		receiver.ID(),
		details,
		h.fees.Calculate(details.Weight, cmd.CouponCode()),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
