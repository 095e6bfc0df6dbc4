package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves purchase orders filtered by
// lifecycle state.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order queries.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first so batch
// consumers work through the backlog in arrival order.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT` + orderSelectColumns + `
		FROM purchase_orders
		WHERE status = ?
		ORDER BY order_date
	`
	args := []any{int(query.Status())}
	if query.Limit() > 0 {
		stmt += " LIMIT ?"
		args = append(args, query.Limit())
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderRows(rows)
}
