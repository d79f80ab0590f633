// Package jobs provides scheduled background tasks for the parcel tracking
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ParcelStatusReportJob logs a snapshot of parcel counts per status, plus the
// number of blocked parcels. It reads through queries.GetParcelStatsQuery and
// never mutates a parcel.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statsHandler, "@every 5m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept six-field cron expressions (seconds first) and
// descriptors such as "@every 5m" or "@hourly". An empty schedule falls back
// to DefaultStatusReportSchedule.
package jobs
