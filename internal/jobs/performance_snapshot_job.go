package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PerformanceSnapshotJob records a point-in-time copy of every vendor's
// current performance metrics every fifteen minutes, building up the
// historical trend data behind the performance history endpoint.
type PerformanceSnapshotJob struct {
	handler commands.RecordPerformanceSnapshotsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPerformanceSnapshotJob creates the snapshot job.
func NewPerformanceSnapshotJob(
	handler commands.RecordPerformanceSnapshotsCommandHandler,
	logger *slog.Logger,
) *PerformanceSnapshotJob {
	return &PerformanceSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "performance_snapshot_job"),
	}
}

// Start schedules the job to run every fifteen minutes.
func (j *PerformanceSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 */15 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRecordPerformanceSnapshotsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build snapshot command", "error", cmdErr)
			return
		}

		snapshots, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Failed to record performance snapshots", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Recorded performance snapshots", "count", len(snapshots))
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Performance snapshot job started (running every 15 minutes)")
	return nil
}

// Stop stops the snapshot job.
func (j *PerformanceSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Performance snapshot job stopped")
}
