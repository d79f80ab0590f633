package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	statusReportJob *ParcelStatusReportJob
}

func NewJobManager(statsHandler ParcelStatsHandler, statusReportSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		statusReportJob: NewParcelStatusReportJob(statsHandler, statusReportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statusReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start parcel status report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.statusReportJob.Stop()
}
