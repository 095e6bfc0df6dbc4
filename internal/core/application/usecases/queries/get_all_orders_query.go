package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every purchase order in the system.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all purchase orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// ItemResponse represents one order line in the read model.
type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderResponse represents purchase order information in the read model.
// VendorCode is nil for pending orders; the date pointers are nil until the
// corresponding transition happened.
type OrderResponse struct {
	PONumber             kernel.Code
	VendorCode           *kernel.Code
	Status               order.Status
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	IssueDate            *time.Time
	AcknowledgmentDate   *time.Time
	Items                []ItemResponse
	Quantity             int
	QualityRating        *int
}
