// Package jobs provides scheduled background tasks for the procurement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the procurement service.
//
// # Available Jobs
//
// 1. OrderProgressionJob - Runs every five minutes to advance random batches of
// purchase orders through their lifecycle (issue, acknowledge, deliver, cancel,
// rate), keeping vendor performance metrics evolving over time
// 2. PerformanceSnapshotJob - Runs every fifteen minutes to record a historical
// snapshot of every vendor's current performance metrics
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(
//		issueHandler, acknowledgeHandler, deliverHandler,
//		cancelHandler, rateHandler, recordSnapshotsHandler,
//		ordersByStatusHandler, allVendorsHandler, logger,
//	)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Progression job logs expected lifecycle rejections at debug level only,
// since concurrent cycles legitimately race each other over the same orders
// - Snapshot job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
