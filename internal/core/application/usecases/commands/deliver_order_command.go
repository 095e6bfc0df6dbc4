package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a vendor completing delivery of an
// acknowledged purchase order.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	poNumber    kernel.Code
	vendorCode  kernel.Code
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark an order delivered.
func NewDeliverOrderCommand(poNumber, vendorCode kernel.Code, deliveredAt time.Time) (DeliverOrderCommand, error) {
	if err := poNumber.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}
	if err := vendorCode.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}
	if deliveredAt.IsZero() {
		return DeliverOrderCommand{}, errs.NewValueIsRequiredError("deliveredAt")
	}

	return DeliverOrderCommand{
		poNumber:    poNumber,
		vendorCode:  vendorCode,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// PONumber returns the purchase order number.
func (c DeliverOrderCommand) PONumber() kernel.Code {
	return c.poNumber
}

// VendorCode returns the delivering vendor's code.
func (c DeliverOrderCommand) VendorCode() kernel.Code {
	return c.vendorCode
}

// DeliveredAt returns the actual delivery timestamp.
func (c DeliverOrderCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}
