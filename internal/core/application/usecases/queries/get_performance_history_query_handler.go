package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetPerformanceHistoryQueryHandler reads the snapshot history of one vendor.
type GetPerformanceHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPerformanceHistoryQueryHandler creates a handler for performance
// history queries.
func NewGetPerformanceHistoryQueryHandler(db *gorm.DB) GetPerformanceHistoryQueryHandler {
	return GetPerformanceHistoryQueryHandler{db: db}
}

// Handle executes the query. Snapshots come back newest first; an unknown
// vendor yields an empty history, not an error.
func (h GetPerformanceHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPerformanceHistoryQuery,
) ([]PerformanceSnapshotResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots := make([]PerformanceSnapshotResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_code,
			taken_at,
			on_time_delivery_rate,
			quality_rating_avg,
			average_response_time,
			fulfillment_rate
		FROM performance_snapshots
		WHERE vendor_code = ?
		ORDER BY taken_at DESC
	`, query.VendorCode().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s PerformanceSnapshotResponse
		var id, vendorCode string
		var onTime, quality, response, fulfillment sql.NullFloat64

		if err = rows.Scan(
			&id,
			&vendorCode,
			&s.TakenAt,
			&onTime,
			&quality,
			&response,
			&fulfillment,
		); err != nil {
			return nil, err
		}

		if s.ID, err = kernel.CodeFromString(id); err != nil {
			return nil, err
		}
		if s.VendorCode, err = kernel.CodeFromString(vendorCode); err != nil {
			return nil, err
		}
		s.OnTimeDeliveryRate = nullableFloat(onTime)
		s.QualityRatingAvg = nullableFloat(quality)
		s.AverageResponseTime = nullableFloat(response)
		s.FulfillmentRate = nullableFloat(fulfillment)

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
