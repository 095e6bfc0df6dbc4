package commands

import (
	"context"

	"procurement/internal/core/domain/model/vendor"
)

// CreateVendorCommandHandler handles the business logic for vendor registration.
// New vendors start with all four performance metrics unset; the metrics are
// first populated once their purchase orders move through the lifecycle.
type CreateVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewCreateVendorCommandHandler creates a handler for vendor registration.
// Requires a VendorUoWFactory for transactional persistence.
func NewCreateVendorCommandHandler(uowFactory VendorUoWFactory) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor registration command and returns the created vendor.
func (h CreateVendorCommandHandler) Handle(ctx context.Context, cmd CreateVendorCommand) (*vendor.Vendor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := vendor.NewVendor(cmd.Code(), cmd.Name(), cmd.ContactDetails(), cmd.Address())
	if err != nil {
		return nil, err
	}

	if err = uow.VendorRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
