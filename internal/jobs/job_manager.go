package jobs

import (
	"fmt"
	"log/slog"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProgressionJob    *OrderProgressionJob
	performanceSnapshotJob *PerformanceSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up the job execution.
func NewJobManager(
	issueHandler commands.IssueOrderCommandHandler,
	acknowledgeHandler commands.AcknowledgeOrderCommandHandler,
	deliverHandler commands.DeliverOrderCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	rateHandler commands.RateOrderQualityCommandHandler,
	recordSnapshotsHandler commands.RecordPerformanceSnapshotsCommandHandler,
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	allVendorsHandler queries.GetAllVendorsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderProgressionJob: NewOrderProgressionJob(
			issueHandler,
			acknowledgeHandler,
			deliverHandler,
			cancelHandler,
			rateHandler,
			ordersByStatusHandler,
			allVendorsHandler,
			logger,
		),
		performanceSnapshotJob: NewPerformanceSnapshotJob(recordSnapshotsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderProgressionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order progression job: %w", err)
	}

	if err := jm.performanceSnapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderProgressionJob.Stop()
		return fmt.Errorf("failed to start performance snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.performanceSnapshotJob.Stop()
	jm.orderProgressionJob.Stop()
}
