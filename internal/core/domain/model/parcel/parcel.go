package parcel

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// MaxWeight bounds the declared weight so that any fee derived from it stays
// a finite number.
const MaxWeight = 1_000_000.0

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created through
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Details are the descriptive attributes a sender supplies at creation. They
// never change afterwards.
type Details struct {
	Type            string
	Weight          float64
	PickupAddress   string
	DeliveryAddress string
	DeliveryDate    *time.Time
}

// Charge is the monetary part of a parcel, computed once at creation.
type Charge struct {
	Fee            float64
	CouponCode     string
	DiscountAmount float64
}

// Parcel is the aggregate root of the lifecycle. All status changes go through
// its methods, each of which appends exactly one TrackingEvent.
//
// Invariants:
//   - id, trackingID, sender, receiver, details and charge are immutable
//   - weight is positive, fee and discount are non-negative
//   - events is never empty and its last entry carries the current status
type Parcel struct {
	id         kernel.UUID
	trackingID string
	sender     kernel.UUID
	receiver   kernel.UUID
	details    Details
	charge     Charge
	status     Status
	isBlocked  bool
	events     []TrackingEvent
	createdAt  time.Time
	updatedAt  time.Time

	// version is the persisted revision this instance was loaded at. Repositories
	// use it as the expected value of a conditional update.
	version int

	isConstructed bool
}

// NewParcel creates a Requested parcel with its initial tracking event
// attributed to the sender.
func NewParcel(
	id kernel.UUID,
	trackingID string,
	sender, receiver kernel.UUID,
	details Details,
	charge Charge,
	at time.Time,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setParties(sender, receiver),
		p.setDetails(details),
		p.setCharge(charge),
	); err != nil {
		return nil, err
	}

	if err := p.transition(Requested, sender, at, "", NoteRequested); err != nil {
		return nil, err
	}
	p.createdAt = p.updatedAt

	return p, nil
}

// RestoreParams carries a persisted parcel back into the domain.
type RestoreParams struct {
	ID         kernel.UUID
	TrackingID string
	Sender     kernel.UUID
	Receiver   kernel.UUID
	Details    Details
	Charge     Charge
	Status     Status
	IsBlocked  bool
	Events     []TrackingEvent
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
}

// RestoreParcel rebuilds a parcel from storage, re-checking every invariant.
func RestoreParcel(params RestoreParams) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
		version:       params.Version,
		isBlocked:     params.IsBlocked,
	}

	if err := errors.Join(
		p.setID(params.ID),
		p.setTrackingID(params.TrackingID),
		p.setParties(params.Sender, params.Receiver),
		p.setDetails(params.Details),
		p.setCharge(params.Charge),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(params.Events) == 0 {
		return nil, errs.NewValueIsRequiredError("tracking events")
	}
	if last := params.Events[len(params.Events)-1]; last.Status() != params.Status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"tracking events",
			fmt.Errorf("last event status %s does not match parcel status %s", last.Status(), params.Status),
		)
	}

	p.status = params.Status
	p.events = append([]TrackingEvent(nil), params.Events...)

	return p, nil
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) TrackingID() string {
	return p.trackingID
}

func (p *Parcel) Sender() kernel.UUID {
	return p.sender
}

func (p *Parcel) Receiver() kernel.UUID {
	return p.receiver
}

func (p *Parcel) Details() Details {
	return p.details
}

func (p *Parcel) Charge() Charge {
	return p.charge
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) IsBlocked() bool {
	return p.isBlocked
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Parcel) Version() int {
	return p.version
}

// SetVersion records the revision a repository has just written.
func (p *Parcel) SetVersion(version int) {
	p.version = version
}

// Events returns a copy of the tracking history, oldest first.
func (p *Parcel) Events() []TrackingEvent {
	return append([]TrackingEvent(nil), p.events...)
}

func (p *Parcel) IsSentBy(id kernel.UUID) bool {
	return p.sender.IsEqual(id)
}

func (p *Parcel) IsAddressedTo(id kernel.UUID) bool {
	return p.receiver.IsEqual(id)
}

// Cancel is the sender's withdrawal of a parcel that has not been dispatched.
func (p *Parcel) Cancel(by kernel.UUID, at time.Time) error {
	next, err := p.status.Cancel()
	if err != nil {
		return err
	}
	return p.transition(next, by, at, "", NoteSenderCanceled)
}

// ConfirmDelivery is the receiver's acknowledgement of an In Transit parcel.
func (p *Parcel) ConfirmDelivery(by kernel.UUID, at time.Time) error {
	next, err := p.status.ConfirmDelivery()
	if err != nil {
		return err
	}
	return p.transition(next, by, at, "", NoteReceiverConfirmed)
}

// UpdateStatus is an administrator move to Approved, Dispatched or In Transit.
func (p *Parcel) UpdateStatus(target Status, by kernel.UUID, at time.Time, location, note string) error {
	if !target.IsAdminSettable() {
		return fmt.Errorf("%w: %s cannot be set by a status update", ErrInvalidStatus, target)
	}
	if p.isBlocked {
		return fmt.Errorf("%w: parcel is blocked", ErrInvalidTransition)
	}
	next, err := p.status.UpdateTo(target)
	if err != nil {
		return err
	}
	return p.transition(next, by, at, location, note)
}

// Block always applies, even to blocked or terminal parcels, and always
// appends a new Blocked event. Repeated calls therefore grow the history.
func (p *Parcel) Block(by kernel.UUID, at time.Time) error {
	if err := p.transition(Blocked, by, at, "", NoteAdminBlocked); err != nil {
		return err
	}
	p.isBlocked = true
	return nil
}

func (p *Parcel) transition(next Status, by kernel.UUID, at time.Time, location, note string) error {
	event, err := NewTrackingEvent(next, at, by, location, note)
	if err != nil {
		return err
	}

	p.status = next
	p.events = append(p.events, event)
	p.updatedAt = event.Timestamp()
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(trackingID string) error {
	if strings.TrimSpace(trackingID) == "" {
		return errs.NewValueIsRequiredError("tracking id")
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setParties(sender, receiver kernel.UUID) error {
	if err := errors.Join(sender.Validate(), receiver.Validate()); err != nil {
		return err
	}
	p.sender = sender
	p.receiver = receiver
	return nil
}

func (p *Parcel) setDetails(d Details) error {
	if err := ValidateDetails(d); err != nil {
		return err
	}

	if d.DeliveryDate != nil {
		date := d.DeliveryDate.UTC()
		d.DeliveryDate = &date
	}
	p.details = d
	return nil
}

// ValidateDetails checks the sender supplied attributes of a parcel.
func ValidateDetails(d Details) error {
	var errList []error
	if strings.TrimSpace(d.Type) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("type"))
	}
	switch {
	case !IsValidWeight(d.Weight):
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid", fmt.Errorf("%v is not a positive number", d.Weight)))
	case d.Weight > MaxWeight:
		errList = append(errList, errs.NewValueIsOutOfRangeError("weight", d.Weight, 0, MaxWeight))
	}
	if strings.TrimSpace(d.PickupAddress) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickup address"))
	}
	if strings.TrimSpace(d.DeliveryAddress) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery address"))
	}
	return errors.Join(errList...)
}

func (p *Parcel) setCharge(c Charge) error {
	if !isAmount(c.Fee) {
		return errs.NewValueIsInvalidErrorWithCause("fee is invalid", fmt.Errorf("%v is not a finite non-negative amount", c.Fee))
	}
	if !isAmount(c.DiscountAmount) {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount is invalid", fmt.Errorf("%v is not a finite non-negative amount", c.DiscountAmount))
	}
	p.charge = c
	return nil
}

func isAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// IsValidWeight reports whether w is a positive finite number.
func IsValidWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
