package queries

import (
	"errors"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves purchase orders in a single lifecycle
// state. The progression job uses it to pick its per-cycle batches.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
// A limit of 0 means no limit.
func NewGetOrdersByStatusQuery(status order.Status, limit int) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		limit:  max(limit, 0),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle state to filter on.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Limit returns the maximum number of orders to return, 0 for all.
func (q GetOrdersByStatusQuery) Limit() int {
	return q.limit
}
