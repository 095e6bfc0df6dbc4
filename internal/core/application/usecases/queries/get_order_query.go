package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single purchase order by its PO number.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	poNumber kernel.Code

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one purchase order.
func NewGetOrderQuery(poNumber kernel.Code) (GetOrderQuery, error) {
	if err := poNumber.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		poNumber: poNumber,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// PONumber returns the purchase order number to look up.
func (q GetOrderQuery) PONumber() kernel.Code {
	return q.poNumber
}
