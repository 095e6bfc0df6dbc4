package ports

import (
	"context"

	"procurement/internal/core/domain/model/vendor"
)

// PerformanceSnapshotRepository defines the persistence contract for vendor
// performance history records. Snapshots are append-only.
type PerformanceSnapshotRepository interface {
	// Add persists a new performance snapshot.
	Add(ctx context.Context, snapshot *vendor.PerformanceSnapshot) error
}
