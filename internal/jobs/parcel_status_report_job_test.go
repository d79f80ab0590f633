package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsHandlerFunc func(ctx context.Context, query queries.GetParcelStatsQuery) (queries.GetParcelStatsQueryResponse, error)

func (f statsHandlerFunc) Handle(
	ctx context.Context,
	query queries.GetParcelStatsQuery,
) (queries.GetParcelStatsQueryResponse, error) {
	return f(ctx, query)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestParcelStatusReportJob_Run(t *testing.T) {
	t.Run("logs counts per status", func(t *testing.T) {
		var buf bytes.Buffer
		handler := statsHandlerFunc(func(context.Context, queries.GetParcelStatsQuery) (queries.GetParcelStatsQueryResponse, error) {
			return queries.GetParcelStatsQueryResponse{
				ByStatus: map[parcel.Status]int64{parcel.Requested: 3, parcel.InTransit: 1, parcel.Blocked: 1},
				Blocked:  1,
				Total:    5,
			}, nil
		})
		job := jobs.NewParcelStatusReportJob(handler, "", newLogger(&buf))

		job.Run(context.Background())

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "Parcel status report", record["msg"])
		assert.Equal(t, "parcel_status_report_job", record["component"])
		assert.InDelta(t, 5, record["total"], 0)
		assert.InDelta(t, 1, record["blocked"], 0)

		byStatus, ok := record["by_status"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 3, byStatus["Requested"], 0)
		assert.InDelta(t, 1, byStatus["In Transit"], 0)
		assert.NotContains(t, byStatus, "Delivered")
	})

	t.Run("logs handler failures", func(t *testing.T) {
		var buf bytes.Buffer
		handler := statsHandlerFunc(func(context.Context, queries.GetParcelStatsQuery) (queries.GetParcelStatsQueryResponse, error) {
			return queries.GetParcelStatsQueryResponse{}, errors.New("connection refused")
		})
		job := jobs.NewParcelStatusReportJob(handler, "", newLogger(&buf))

		job.Run(context.Background())

		assert.Contains(t, buf.String(), "Parcel status report failed")
		assert.Contains(t, buf.String(), "connection refused")
	})
}

func TestParcelStatusReportJob_StartStop(t *testing.T) {
	var buf bytes.Buffer
	handler := statsHandlerFunc(func(context.Context, queries.GetParcelStatsQuery) (queries.GetParcelStatsQueryResponse, error) {
		return queries.GetParcelStatsQueryResponse{}, nil
	})

	job := jobs.NewParcelStatusReportJob(handler, "@every 1h", newLogger(&buf))
	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "Parcel status report job started")
	assert.Contains(t, buf.String(), "Parcel status report job stopped")
}

func TestJobManager_StartAll_RejectsBadSchedule(t *testing.T) {
	var buf bytes.Buffer
	handler := statsHandlerFunc(func(context.Context, queries.GetParcelStatsQuery) (queries.GetParcelStatsQueryResponse, error) {
		return queries.GetParcelStatsQueryResponse{}, nil
	})

	manager := jobs.NewJobManager(handler, "every now and then", newLogger(&buf))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parcel status report job")
}
