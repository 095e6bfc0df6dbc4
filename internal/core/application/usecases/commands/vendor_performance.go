package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/vendor"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// metricsScope selects which branch of the performance calculator a
// transition triggers.
type metricsScope int

const (
	// allMetrics recomputes all four vendor statistics.
	allMetrics metricsScope = iota

	// qualityOnly recomputes the quality rating average only.
	// Used by the rating operation.
	qualityOnly
)

// recomputeVendorPerformance re-reads the vendor's complete order population
// inside the current transaction, recomputes the selected metrics and persists
// the vendor. Must be called after the triggering order was updated, so the
// scan sees the transition's effect. Metrics whose population is empty are
// skipped; when nothing is recomputable the vendor row is left untouched.
func recomputeVendorPerformance(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	vendorRepo ports.VendorRepository,
	v *vendor.Vendor,
	trigger *order.PurchaseOrder,
	scope metricsScope,
) error {
	orders, err := orderRepo.GetAllByVendor(ctx, v.Code())
	if err != nil {
		return err
	}

	calc := services.NewPerformanceCalculator()
	var metrics vendor.Metrics
	if scope == qualityOnly {
		metrics = calc.RecalculateQuality(v, orders, trigger)
	} else {
		metrics = calc.Recalculate(v, orders, trigger)
	}

	if metrics.IsEmpty() {
		return nil
	}

	if err := v.ApplyMetrics(metrics); err != nil {
		return err
	}

	return vendorRepo.Update(ctx, v)
}
