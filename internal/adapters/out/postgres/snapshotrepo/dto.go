// Package snapshotrepo persists vendor performance snapshots. Snapshots are
// an append-only history: rows are inserted by the snapshot job and read back
// by the performance history query.
package snapshotrepo

import (
	"time"

	"procurement/internal/core/domain/model/vendor"
)

// PerformanceSnapshotDTO represents the database structure for one recorded
// metrics observation.
type PerformanceSnapshotDTO struct {
	ID                  string    `gorm:"type:varchar(10);primaryKey"`
	VendorCode          string    `gorm:"type:varchar(10);index"`
	TakenAt             time.Time `gorm:"index"`
	OnTimeDeliveryRate  *float64
	QualityRatingAvg    *float64
	AverageResponseTime *float64
	FulfillmentRate     *float64
}

// TableName specifies the database table name for snapshot entities.
func (PerformanceSnapshotDTO) TableName() string {
	return "performance_snapshots"
}

// fromDomain converts a snapshot entity to its database representation.
func fromDomain(snapshot *vendor.PerformanceSnapshot) PerformanceSnapshotDTO {
	metrics := snapshot.Metrics()
	return PerformanceSnapshotDTO{
		ID:                  snapshot.ID().String(),
		VendorCode:          snapshot.VendorCode().String(),
		TakenAt:             snapshot.TakenAt(),
		OnTimeDeliveryRate:  metrics.OnTimeDeliveryRate,
		QualityRatingAvg:    metrics.QualityRatingAvg,
		AverageResponseTime: metrics.AverageResponseTime,
		FulfillmentRate:     metrics.FulfillmentRate,
	}
}
