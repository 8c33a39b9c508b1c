// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every second to assign pending orders to available drivers
// 2. OverdueWatchJob - Runs every minute to flag in-transit orders past their estimated delivery
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, listOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" and runs every
// second, so new orders are matched with drivers in near real time. The
// overdue watch runs once a minute ("0 * * * * *"); estimated delivery
// windows are measured in hours, so finer granularity adds nothing.
//
// # Error Handling
//
// - Dispatch job ignores expected business errors (no orders, no drivers)
// - Overdue watch logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
