// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetAllVendorsQueryIsNotConstructed = errors.New(
	"GetAllVendorsQuery must be created via NewGetAllVendorsQuery constructor",
)

// GetAllVendorsQuery retrieves information about all vendors in the system,
// including their current performance metrics.
//
// Example:
//
//	query := NewGetAllVendorsQuery()
//	handler := NewGetAllVendorsQueryHandler(db)
//
//	vendors, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve vendors: %w", err)
//	}
type GetAllVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVendorsQuery creates a query to retrieve all vendors.
// This is a parameterless query that fetches the complete vendor list.
func NewGetAllVendorsQuery() GetAllVendorsQuery {
	return GetAllVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVendorsQueryIsNotConstructed)
}

// VendorResponse represents vendor information in the read model.
// Metric pointers are nil while the corresponding metric has never been
// computed.
type VendorResponse struct {
	Code                kernel.Code
	Name                string
	ContactDetails      string
	Address             string
	OnTimeDeliveryRate  *float64
	QualityRatingAvg    *float64
	AverageResponseTime *float64
	FulfillmentRate     *float64
}
