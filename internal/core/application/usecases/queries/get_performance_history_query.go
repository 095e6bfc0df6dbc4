package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetPerformanceHistoryQueryIsNotConstructed = errors.New(
	"GetPerformanceHistoryQuery must be created via NewGetPerformanceHistoryQuery constructor",
)

// GetPerformanceHistoryQuery retrieves the recorded performance snapshots of
// a vendor, newest first.
type GetPerformanceHistoryQuery struct { //nolint:recvcheck //using for validation
	vendorCode kernel.Code

	guard guard.ConstructorGuard
}

// NewGetPerformanceHistoryQuery creates a query for a vendor's metric history.
func NewGetPerformanceHistoryQuery(vendorCode kernel.Code) (GetPerformanceHistoryQuery, error) {
	if err := vendorCode.Validate(); err != nil {
		return GetPerformanceHistoryQuery{}, err
	}

	return GetPerformanceHistoryQuery{
		vendorCode: vendorCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPerformanceHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPerformanceHistoryQueryIsNotConstructed)
}

// VendorCode returns the code of the vendor whose history is requested.
func (q GetPerformanceHistoryQuery) VendorCode() kernel.Code {
	return q.vendorCode
}

// PerformanceSnapshotResponse represents one recorded metrics observation.
type PerformanceSnapshotResponse struct {
	ID                  kernel.Code
	VendorCode          kernel.Code
	TakenAt             time.Time
	OnTimeDeliveryRate  *float64
	QualityRatingAvg    *float64
	AverageResponseTime *float64
	FulfillmentRate     *float64
}
