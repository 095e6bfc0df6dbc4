package snapshotrepo

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"

	"gorm.io/gorm"
)

// GormPerformanceSnapshotRepository implements PerformanceSnapshotRepository
// using GORM.
type GormPerformanceSnapshotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(code kernel.Code, aggregate any)
}

// NewGormPerformanceSnapshotRepository creates a new GORM snapshot repository.
func NewGormPerformanceSnapshotRepository(db *gorm.DB, tracker aggregateTracker) *GormPerformanceSnapshotRepository {
	return &GormPerformanceSnapshotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new snapshot row. Snapshots are never updated or deleted.
func (r *GormPerformanceSnapshotRepository) Add(ctx context.Context, snapshot *vendor.PerformanceSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(snapshot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(snapshot.ID(), snapshot)
	return nil
}
