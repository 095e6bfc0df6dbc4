package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// RateOrderQualityCommandHandler handles rating a delivered order. Rating
// feeds only the quality rating average, which blends the new rating with
// the vendor's prior value, so only the quality branch is recomputed.
type RateOrderQualityCommandHandler struct {
	uowFactory UoWFactory
}

// NewRateOrderQualityCommandHandler creates a handler for the rate operation.
func NewRateOrderQualityCommandHandler(uowFactory UoWFactory) RateOrderQualityCommandHandler {
	return RateOrderQualityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rate command and returns the updated order.
func (h RateOrderQualityCommandHandler) Handle(
	ctx context.Context,
	cmd RateOrderQualityCommand,
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

	if err = aggregate.RateQuality(cmd.Rating()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	// A delivered order always carries its vendor.
	v, err := uow.VendorRepository().Get(ctx, *aggregate.VendorCode())
	if err != nil {
		return nil, err
	}

	if err = recomputeVendorPerformance(
		ctx, uow.OrderRepository(), uow.VendorRepository(), v, aggregate, qualityOnly,
	); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
