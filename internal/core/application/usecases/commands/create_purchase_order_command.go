package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a request to create a new purchase
// order in PENDING status. The order has no vendor until it is issued.
//
// Example:
//
//	item, _ := order.NewItem("steel sheet", 40)
//	cmd, err := NewCreatePurchaseOrderCommand(kernel.NewCode(), time.Now(), nil, []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	poNumber             kernel.Code
	orderDate            time.Time
	expectedDeliveryDate *time.Time
	items                []order.Item

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to register a new purchase
// order. The PO number must be valid (generate one with kernel.NewCode when
// absent), the order date must be set and at least one item is required. A nil
// expected delivery date defaults downstream to order date + 21 days.
func NewCreatePurchaseOrderCommand(
	poNumber kernel.Code,
	orderDate time.Time,
	expectedDeliveryDate *time.Time,
	items []order.Item,
) (CreatePurchaseOrderCommand, error) {
	if err := poNumber.Validate(); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}
	if orderDate.IsZero() {
		return CreatePurchaseOrderCommand{}, errs.NewValueIsRequiredError("orderDate")
	}
	if len(items) == 0 {
		return CreatePurchaseOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return CreatePurchaseOrderCommand{}, err
		}
	}

	return CreatePurchaseOrderCommand{
		poNumber:             poNumber,
		orderDate:            orderDate,
		expectedDeliveryDate: expectedDeliveryDate,
		items:                append([]order.Item(nil), items...),
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// PONumber returns the purchase order number to assign.
func (c CreatePurchaseOrderCommand) PONumber() kernel.Code {
	return c.poNumber
}

// OrderDate returns the order creation time.
func (c CreatePurchaseOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// ExpectedDeliveryDate returns the requested delivery date, nil for the default.
func (c CreatePurchaseOrderCommand) ExpectedDeliveryDate() *time.Time {
	return c.expectedDeliveryDate
}

// Items returns the ordered lines.
func (c CreatePurchaseOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}
