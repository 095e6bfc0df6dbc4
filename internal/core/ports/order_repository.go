package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order aggregates.
type OrderRepository interface {
	// Add persists a new purchase order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate.
	Update(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Get retrieves a purchase order aggregate by its PO number.
	Get(ctx context.Context, poNumber kernel.Code) (*order.PurchaseOrder, error)

	// GetForUpdate retrieves a purchase order and locks its row for the
	// remainder of the current transaction. Transitions use this so that
	// concurrent transitions on the same order serialize instead of
	// interleaving.
	GetForUpdate(ctx context.Context, poNumber kernel.Code) (*order.PurchaseOrder, error)

	// GetAllByVendor retrieves every order associated with a vendor.
	// The metrics recomputation scans this population.
	GetAllByVendor(ctx context.Context, vendorCode kernel.Code) ([]*order.PurchaseOrder, error)
}
