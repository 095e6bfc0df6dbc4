package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation. A cancelled order
// drops out of the delivered population but keeps its issue date, so the
// assigned vendor's metrics are recomputed. Pending orders have no vendor
// yet and cancel without touching any vendor row.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for the cancel transition.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command and returns the updated order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.PurchaseOrder, error) {
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

	if err = aggregate.Cancel(cmd.VendorCode()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if vendorCode := aggregate.VendorCode(); vendorCode != nil {
		v, vErr := uow.VendorRepository().Get(ctx, *vendorCode)
		if vErr != nil {
			return nil, vErr
		}

		if err = recomputeVendorPerformance(
			ctx, uow.OrderRepository(), uow.VendorRepository(), v, aggregate, allMetrics,
		); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
