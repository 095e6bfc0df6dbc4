package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"
)

// RecordPerformanceSnapshotsCommandHandler captures the current metrics of
// every vendor into the performance history. Vendors whose metrics are still
// entirely unset are skipped; an empty snapshot records nothing useful.
type RecordPerformanceSnapshotsCommandHandler struct {
	uowFactory SnapshotUoWFactory
}

// NewRecordPerformanceSnapshotsCommandHandler creates a handler for the snapshot job.
func NewRecordPerformanceSnapshotsCommandHandler(
	uowFactory SnapshotUoWFactory,
) RecordPerformanceSnapshotsCommandHandler {
	return RecordPerformanceSnapshotsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records one snapshot per vendor with populated metrics and returns
// the snapshots taken.
func (h RecordPerformanceSnapshotsCommandHandler) Handle(
	ctx context.Context,
	cmd RecordPerformanceSnapshotsCommand,
) ([]*vendor.PerformanceSnapshot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendors, err := uow.VendorRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*vendor.PerformanceSnapshot, 0, len(vendors))
	for _, v := range vendors {
		if v.Metrics().IsEmpty() {
			continue
		}

		snapshot, sErr := vendor.NewPerformanceSnapshot(kernel.NewCode(), v, cmd.TakenAt())
		if sErr != nil {
			return nil, sErr
		}

		if sErr = uow.PerformanceSnapshotRepository().Add(ctx, snapshot); sErr != nil {
			return nil, sErr
		}

		snapshots = append(snapshots, snapshot)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return snapshots, nil
}
