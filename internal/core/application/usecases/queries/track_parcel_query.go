package queries

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery is the public lookup by tracking id. It needs no caller.
type TrackParcelQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

func NewTrackParcelQuery(trackingID string) (TrackParcelQuery, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("tracking id")
	}
	return TrackParcelQuery{trackingID: trackingID, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

func (q TrackParcelQuery) TrackingID() string {
	return q.trackingID
}

// TrackParcelQueryResponse is the redacted public view: no parties, fees or
// actors.
type TrackParcelQueryResponse struct {
	TrackingID    string
	CurrentStatus parcel.Status
	History       []PublicTrackingEvent
}

type PublicTrackingEvent struct {
	Status    parcel.Status
	Timestamp time.Time
	Note      string
	Location  string
}
