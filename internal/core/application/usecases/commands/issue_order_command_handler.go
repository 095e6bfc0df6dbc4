package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// IssueOrderCommandHandler handles issuing a pending order to a vendor.
// The transition and the vendor's fulfillment rate recomputation share one
// transaction.
type IssueOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewIssueOrderCommandHandler creates a handler for the issue transition.
func NewIssueOrderCommandHandler(uowFactory UoWFactory) IssueOrderCommandHandler {
	return IssueOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the issue command and returns the updated order.
func (h IssueOrderCommandHandler) Handle(ctx context.Context, cmd IssueOrderCommand) (*order.PurchaseOrder, error) {
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

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.PONumber())
	if err != nil {
		return nil, err
	}

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorCode())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Issue(v.Code(), cmd.IssuedAt()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = recomputeVendorPerformance(
		ctx, uow.OrderRepository(), uow.VendorRepository(), v, aggregate, allMetrics,
	); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
