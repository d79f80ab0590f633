package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule runs the report every five minutes.
const DefaultStatusReportSchedule = "@every 5m"

// ParcelStatsHandler is the read side the report job depends on.
type ParcelStatsHandler interface {
	Handle(ctx context.Context, query queries.GetParcelStatsQuery) (queries.GetParcelStatsQueryResponse, error)
}

// ParcelStatusReportJob periodically logs how many parcels sit in each
// status. It only reads.
type ParcelStatusReportJob struct {
	handler  ParcelStatsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewParcelStatusReportJob(handler ParcelStatsHandler, schedule string, logger *slog.Logger) *ParcelStatusReportJob {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}
	return &ParcelStatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "parcel_status_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *ParcelStatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parcel status report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *ParcelStatusReportJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetParcelStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Parcel status report failed", "error", err)
		return
	}

	byStatus := make([]any, 0, len(stats.ByStatus))
	for _, s := range orderedStatuses(stats) {
		byStatus = append(byStatus, slog.Int64(s.String(), stats.ByStatus[s]))
	}

	j.logger.InfoContext(ctx, "Parcel status report",
		slog.Int64("total", stats.Total),
		slog.Int64("blocked", stats.Blocked),
		slog.Group("by_status", byStatus...),
	)
}

// Stop waits for a running report to finish.
func (j *ParcelStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Parcel status report job stopped")
}

// orderedStatuses lists the statuses present in stats in lifecycle order so
// consecutive reports line up.
func orderedStatuses(stats queries.GetParcelStatsQueryResponse) []parcel.Status {
	out := make([]parcel.Status, 0, len(stats.ByStatus))
	for _, s := range parcel.AllStatuses() {
		if _, ok := stats.ByStatus[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
