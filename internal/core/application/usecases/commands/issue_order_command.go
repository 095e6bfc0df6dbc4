package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrIssueOrderCommandIsNotConstructed = errors.New(
	"IssueOrderCommand must be created via NewIssueOrderCommand constructor",
)

// IssueOrderCommand represents a request to issue a pending purchase order to
// a vendor. Issuing assigns the vendor and stamps the issue date.
type IssueOrderCommand struct { //nolint:recvcheck //using for validation
	poNumber   kernel.Code
	vendorCode kernel.Code
	issuedAt   time.Time

	guard guard.ConstructorGuard
}

// NewIssueOrderCommand creates a command to issue an order to a vendor.
// Both codes must be valid and the issue timestamp must be set.
func NewIssueOrderCommand(poNumber, vendorCode kernel.Code, issuedAt time.Time) (IssueOrderCommand, error) {
	if err := poNumber.Validate(); err != nil {
		return IssueOrderCommand{}, err
	}
	if err := vendorCode.Validate(); err != nil {
		return IssueOrderCommand{}, err
	}
	if issuedAt.IsZero() {
		return IssueOrderCommand{}, errs.NewValueIsRequiredError("issuedAt")
	}

	return IssueOrderCommand{
		poNumber:   poNumber,
		vendorCode: vendorCode,
		issuedAt:   issuedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueOrderCommand) Validate() error {
	return c.guard.Validate(ErrIssueOrderCommandIsNotConstructed)
}

// PONumber returns the purchase order number.
func (c IssueOrderCommand) PONumber() kernel.Code {
	return c.poNumber
}

// VendorCode returns the vendor the order is issued to.
func (c IssueOrderCommand) VendorCode() kernel.Code {
	return c.vendorCode
}

// IssuedAt returns the issue timestamp.
func (c IssueOrderCommand) IssuedAt() time.Time {
	return c.issuedAt
}
