package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetVendorPerformanceQueryIsNotConstructed = errors.New(
	"GetVendorPerformanceQuery must be created via NewGetVendorPerformanceQuery constructor",
)

// GetVendorPerformanceQuery retrieves the current performance metrics of a
// single vendor.
type GetVendorPerformanceQuery struct { //nolint:recvcheck //using for validation
	vendorCode kernel.Code

	guard guard.ConstructorGuard
}

// NewGetVendorPerformanceQuery creates a query for one vendor's metrics.
func NewGetVendorPerformanceQuery(vendorCode kernel.Code) (GetVendorPerformanceQuery, error) {
	if err := vendorCode.Validate(); err != nil {
		return GetVendorPerformanceQuery{}, err
	}

	return GetVendorPerformanceQuery{
		vendorCode: vendorCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorPerformanceQueryIsNotConstructed)
}

// VendorCode returns the code of the vendor to look up.
func (q GetVendorPerformanceQuery) VendorCode() kernel.Code {
	return q.vendorCode
}
