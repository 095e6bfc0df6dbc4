package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreateVendorCommandIsNotConstructed = errors.New(
	"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
)

// CreateVendorCommand represents a request to register a new vendor.
//
// Example:
//
//	code := kernel.NewCode()
//	cmd, err := NewCreateVendorCommand(code, "Acme Metals", "sales@acme.example", "12 Forge Rd")
//	if err != nil {
//	    return fmt.Errorf("invalid vendor data: %w", err)
//	}
type CreateVendorCommand struct { //nolint:recvcheck //using for validation
	code           kernel.Code
	name           string
	contactDetails string
	address        string

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand creates a command to register a new vendor.
// The code must be a valid Code (generate one with kernel.NewCode when the
// caller did not supply a vendor code) and the name must not be empty.
func NewCreateVendorCommand(code kernel.Code, name, contactDetails, address string) (CreateVendorCommand, error) {
	cmd := CreateVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := code.Validate(); err != nil {
		return CreateVendorCommand{}, err
	}
	if name == "" {
		return CreateVendorCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.code = code
	cmd.name = name
	cmd.contactDetails = contactDetails
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

// Code returns the vendor code to assign.
func (c CreateVendorCommand) Code() kernel.Code {
	return c.code
}

// Name returns the vendor name.
func (c CreateVendorCommand) Name() string {
	return c.name
}

// ContactDetails returns the vendor contact details.
func (c CreateVendorCommand) ContactDetails() string {
	return c.contactDetails
}

// Address returns the vendor address.
func (c CreateVendorCommand) Address() string {
	return c.address
}
