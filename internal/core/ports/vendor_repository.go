package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor aggregate to storage.
	// The vendor must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor aggregate,
	// including recomputed performance metrics.
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor aggregate by its unique code.
	Get(ctx context.Context, code kernel.Code) (*vendor.Vendor, error)

	// GetAll retrieves all vendors. Used by the performance snapshot job.
	GetAll(ctx context.Context) ([]*vendor.Vendor, error)
}
