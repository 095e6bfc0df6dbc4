package queries

import (
	"context"

	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one purchase order by PO number.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no order
// with the requested PO number exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSelectColumns+`
		FROM purchase_orders
		WHERE po_number = ?
	`, query.PONumber().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("poNumber", query.PONumber().String())
	}

	o, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return o, rows.Err()
}
