package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const dateOnly = "2006-01-02"

var (
	ErrListAllParcelsQueryIsNotConstructed = errors.New(
		"ListAllParcelsQuery must be created via NewListAllParcelsQuery constructor",
	)
)

// ListAllParcelsQuery is the administrator listing. Every filter is
// optional; creation-date bounds are inclusive.
type ListAllParcelsQuery struct {
	caller kernel.Identity
	status *parcel.Status
	from   *time.Time

	// until is exclusive when untilExclusive is set. A date-only upper bound
	// is turned into the start of the following day so it covers that day.
	until          *time.Time
	untilExclusive bool

	guard guard.ConstructorGuard
}

// NewListAllParcelsQuery parses the raw filter values. Dates are RFC 3339
// timestamps or YYYY-MM-DD calendar dates in UTC; empty strings mean no
// filter.
func NewListAllParcelsQuery(caller kernel.Identity, status, from, to string) (ListAllParcelsQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListAllParcelsQuery{}, err
	}

	q := ListAllParcelsQuery{caller: caller, guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(status) != "" {
		s, err := parcel.ParseStatus(status)
		if err != nil {
			return ListAllParcelsQuery{}, err
		}
		q.status = &s
	}

	if strings.TrimSpace(from) != "" {
		t, _, err := parseDateBound(from)
		if err != nil {
			return ListAllParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
		q.from = &t
	}

	if strings.TrimSpace(to) != "" {
		t, isDate, err := parseDateBound(to)
		if err != nil {
			return ListAllParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
		if isDate {
			t = t.AddDate(0, 0, 1)
			q.untilExclusive = true
		}
		q.until = &t
	}

	if q.from != nil && q.until != nil && q.isReversed() {
		return ListAllParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"to", fmt.Errorf("%s is before %s", to, from))
	}

	return q, nil
}

// isReversed reports a range that can match nothing. An exclusive upper
// bound must lie strictly after the lower one.
func (q ListAllParcelsQuery) isReversed() bool {
	if q.untilExclusive {
		return !q.until.After(*q.from)
	}
	return q.until.Before(*q.from)
}

func parseDateBound(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t.UTC(), true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%q is neither YYYY-MM-DD nor an RFC 3339 timestamp", s)
	}
	return t.UTC(), false, nil
}

func (q ListAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListAllParcelsQueryIsNotConstructed)
}

func (q ListAllParcelsQuery) Caller() kernel.Identity {
	return q.caller
}

func (q ListAllParcelsQuery) Status() (parcel.Status, bool) {
	if q.status == nil {
		return parcel.Unknown, false
	}
	return *q.status, true
}

func (q ListAllParcelsQuery) From() (time.Time, bool) {
	if q.from == nil {
		return time.Time{}, false
	}
	return *q.from, true
}

// Until returns the upper bound and whether it is exclusive.
func (q ListAllParcelsQuery) Until() (time.Time, bool, bool) {
	if q.until == nil {
		return time.Time{}, false, false
	}
	return *q.until, q.untilExclusive, true
}
