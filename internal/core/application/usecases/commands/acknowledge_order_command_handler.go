package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// AcknowledgeOrderCommandHandler handles a vendor's acknowledgment of an
// issued order. Acknowledgment stamps the response time input, so the
// vendor's average response time is recomputed in the same transaction.
type AcknowledgeOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcknowledgeOrderCommandHandler creates a handler for the acknowledge transition.
func NewAcknowledgeOrderCommandHandler(uowFactory UoWFactory) AcknowledgeOrderCommandHandler {
	return AcknowledgeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledge command and returns the updated order.
func (h AcknowledgeOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AcknowledgeOrderCommand,
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

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.PONumber())
	if err != nil {
		return nil, err
	}

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorCode())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Acknowledge(v.Code(), cmd.AcknowledgedAt()); err != nil {
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
