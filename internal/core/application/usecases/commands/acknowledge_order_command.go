package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrAcknowledgeOrderCommandIsNotConstructed = errors.New(
	"AcknowledgeOrderCommand must be created via NewAcknowledgeOrderCommand constructor",
)

// AcknowledgeOrderCommand represents a vendor confirming receipt of an issued
// purchase order.
type AcknowledgeOrderCommand struct { //nolint:recvcheck //using for validation
	poNumber       kernel.Code
	vendorCode     kernel.Code
	acknowledgedAt time.Time

	guard guard.ConstructorGuard
}

// NewAcknowledgeOrderCommand creates a command to acknowledge an issued order.
func NewAcknowledgeOrderCommand(
	poNumber, vendorCode kernel.Code,
	acknowledgedAt time.Time,
) (AcknowledgeOrderCommand, error) {
	if err := poNumber.Validate(); err != nil {
		return AcknowledgeOrderCommand{}, err
	}
	if err := vendorCode.Validate(); err != nil {
		return AcknowledgeOrderCommand{}, err
	}
	if acknowledgedAt.IsZero() {
		return AcknowledgeOrderCommand{}, errs.NewValueIsRequiredError("acknowledgedAt")
	}

	return AcknowledgeOrderCommand{
		poNumber:       poNumber,
		vendorCode:     vendorCode,
		acknowledgedAt: acknowledgedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcknowledgeOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeOrderCommandIsNotConstructed)
}

// PONumber returns the purchase order number.
func (c AcknowledgeOrderCommand) PONumber() kernel.Code {
	return c.poNumber
}

// VendorCode returns the acknowledging vendor's code.
func (c AcknowledgeOrderCommand) VendorCode() kernel.Code {
	return c.vendorCode
}

// AcknowledgedAt returns the acknowledgment timestamp.
func (c AcknowledgeOrderCommand) AcknowledgedAt() time.Time {
	return c.acknowledgedAt
}
