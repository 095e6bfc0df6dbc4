package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// CreatePurchaseOrderCommandHandler handles the business logic for registering
// a new purchase order. Orders enter the system in PENDING status with no
// vendor assigned, so no metrics recomputation happens here.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreatePurchaseOrderCommandHandler creates a handler for order registration.
func NewCreatePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command and returns the created order.
func (h CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (*order.PurchaseOrder, error) {
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

	aggregate, err := order.NewPurchaseOrder(cmd.PONumber(), cmd.OrderDate(), cmd.ExpectedDeliveryDate(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
