package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelStatsQueryIsNotConstructed = errors.New(
		"GetParcelStatsQuery must be created via NewGetParcelStatsQuery constructor",
	)
)

// GetParcelStatsQuery counts parcels per status for operational reporting.
type GetParcelStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetParcelStatsQuery() GetParcelStatsQuery {
	return GetParcelStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetParcelStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatsQueryIsNotConstructed)
}

// GetParcelStatsQueryResponse has an entry for every status, zero included.
type GetParcelStatsQueryResponse struct {
	ByStatus map[parcel.Status]int64
	Blocked  int64
	Total    int64
}
