package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// Notes attached to the events the lifecycle appends on its own.
const (
	NoteRequested         = "Parcel requested"
	NoteSenderCanceled    = "Sender canceled"
	NoteReceiverConfirmed = "Receiver confirmed delivery"
	NoteAdminBlocked      = "Admin blocked parcel"
)

// TrackingEvent is one immutable entry of a parcel's history. Location and
// note are optional and empty when absent.
type TrackingEvent struct {
	status    Status
	timestamp time.Time
	location  string
	updatedBy kernel.UUID
	note      string
}

// NewTrackingEvent builds an event, validating the status, the actor and the timestamp.
func NewTrackingEvent(status Status, at time.Time, updatedBy kernel.UUID, location, note string) (TrackingEvent, error) {
	var tsErr error
	if at.IsZero() {
		tsErr = errs.NewValueIsRequiredError("timestamp")
	}
	if err := errors.Join(status.Validate(), updatedBy.Validate(), tsErr); err != nil {
		return TrackingEvent{}, err
	}

	return TrackingEvent{
		status:    status,
		timestamp: at.UTC(),
		location:  location,
		updatedBy: updatedBy,
		note:      note,
	}, nil
}

func (e TrackingEvent) Status() Status {
	return e.status
}

func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

func (e TrackingEvent) Location() string {
	return e.location
}

func (e TrackingEvent) UpdatedBy() kernel.UUID {
	return e.updatedBy
}

func (e TrackingEvent) Note() string {
	return e.note
}
