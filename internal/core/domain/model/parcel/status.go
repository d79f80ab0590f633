package parcel

import (
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is returned when the current status does not allow
	// the requested operation.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyDelivered is returned when confirming delivery of a parcel that
	// is already Delivered. It is kept apart from ErrInvalidTransition so the
	// receiver gets a clearer signal.
	ErrAlreadyDelivered = errors.New("parcel has already been delivered")

	// ErrInvalidStatus is returned for a status value outside the set an
	// operation accepts.
	ErrInvalidStatus = errors.New("invalid status")
)

// Status is the lifecycle state of a parcel.
type Status int

const (
	// Unknown catches uninitialized values and is never persisted.
	Unknown Status = iota
	Requested
	Approved
	Dispatched
	InTransit
	Delivered
	Canceled
	Blocked
)

var statusNames = map[Status]string{
	Requested:  "Requested",
	Approved:   "Approved",
	Dispatched: "Dispatched",
	InTransit:  "In Transit",
	Delivered:  "Delivered",
	Canceled:   "Canceled",
	Blocked:    "Blocked",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Requested, Approved, Dispatched, InTransit, Delivered, Canceled, Blocked}
}

// ParseStatus maps the wire name ("In Transit", "Delivered", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.TrimSpace(s)
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a parcel status", ErrInvalidStatus, s)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no status-changing operation other than
// blocking may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled || s == Blocked
}

// IsAdminSettable reports whether an administrator may set s through a plain
// status update. Delivered, Canceled and Blocked have dedicated operations.
func (s Status) IsAdminSettable() bool {
	return s == Approved || s == Dispatched || s == InTransit
}

// Cancel transitions to Canceled. Only parcels that have not been dispatched
// yet (Requested, Approved) can be canceled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Requested, Approved:
		return Canceled, nil
	default:
		return Unknown, fmt.Errorf("%w: cannot cancel a %s parcel", ErrInvalidTransition, s)
	}
}

// ConfirmDelivery transitions In Transit to Delivered.
func (s Status) ConfirmDelivery() (Status, error) {
	switch s {
	case InTransit:
		return Delivered, nil
	case Delivered:
		return Unknown, ErrAlreadyDelivered
	default:
		return Unknown, fmt.Errorf("%w: a %s parcel is not ready for delivery confirmation", ErrInvalidTransition, s)
	}
}

// UpdateTo applies an administrator status update. The target must be
// admin-settable; the current status must not be terminal.
func (s Status) UpdateTo(target Status) (Status, error) {
	if !target.IsAdminSettable() {
		return Unknown, fmt.Errorf("%w: %s cannot be set by a status update", ErrInvalidStatus, target)
	}
	if s.IsTerminal() || s == Unknown {
		return Unknown, fmt.Errorf("%w: cannot update status of a %s parcel", ErrInvalidTransition, s)
	}
	return target, nil
}
