package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel a purchase order that has
// not yet been delivered. The vendor code identifies the caller; for pending
// orders no vendor is assigned yet and the code is only used for the metrics
// recomputation lookup.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	poNumber   kernel.Code
	vendorCode kernel.Code

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(poNumber, vendorCode kernel.Code) (CancelOrderCommand, error) {
	if err := poNumber.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if err := vendorCode.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		poNumber:   poNumber,
		vendorCode: vendorCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// PONumber returns the purchase order number.
func (c CancelOrderCommand) PONumber() kernel.Code {
	return c.poNumber
}

// VendorCode returns the vendor code supplied with the cancellation.
func (c CancelOrderCommand) VendorCode() kernel.Code {
	return c.vendorCode
}
