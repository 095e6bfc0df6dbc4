package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler handles delivery completion. Delivery feeds the
// on-time delivery rate and the fulfillment rate, so both are recomputed in
// the transition's transaction.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for the deliver transition.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliver command and returns the updated order.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.PurchaseOrder, error) {
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

	if err = aggregate.Deliver(v.Code(), cmd.DeliveredAt()); err != nil {
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
