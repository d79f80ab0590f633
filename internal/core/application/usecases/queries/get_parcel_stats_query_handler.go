package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

type GetParcelStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelStatsQueryHandler(db *gorm.DB) GetParcelStatsQueryHandler {
	return GetParcelStatsQueryHandler{db: db}
}

func (h GetParcelStatsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelStatsQuery,
) (GetParcelStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	resp := GetParcelStatsQueryResponse{ByStatus: make(map[parcel.Status]int64)}
	for _, s := range parcel.AllStatuses() {
		resp.ByStatus[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COUNT(*) FILTER (WHERE is_blocked)
		FROM parcels
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetParcelStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count, blocked int64
		if err = rows.Scan(&status, &count, &blocked); err != nil {
			return GetParcelStatsQueryResponse{}, err
		}
		resp.ByStatus[parcel.Status(status)] += count
		resp.Blocked += blocked
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	return resp, nil
}
