package services

import (
	"math"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/vendor"
)

// PerformanceCalculator is a domain service that recomputes a vendor's four
// rolling performance metrics from the vendor's complete purchase order
// population. It is invoked after every committed order transition.
//
// Each metric is computed independently; a metric whose population is empty is
// left out of the result entirely, so the vendor's previous value survives
// (skip, never reset). All results are rounded to 4 decimals.
//
// This is deliberately a full scan-and-average over the vendor's orders rather
// than an incremental update: the handler re-reads the order history inside
// the same transaction as the triggering transition, which keeps concurrent
// edits to unrelated orders from corrupting a metric.
//
// Metric definitions:
//   - On-time delivery rate: delivered orders with actual <= expected date,
//     as a percentage of all delivered orders.
//   - Quality rating average: if the vendor has no prior average, the mean
//     rating over delivered+rated orders; if a prior average exists and the
//     triggering order carries a rating, the blend (prior + rating) / 2.
//     The blend drifts from the population mean over many ratings; that is
//     the intended behavior, not a bug to fix.
//   - Average response time: mean issue-to-acknowledgment interval in hours
//     over orders that have been acknowledged.
//   - Fulfillment rate: delivered orders as a percentage of issued orders.
//
// Example usage:
//
//	calc := services.NewPerformanceCalculator()
//	metrics := calc.Recalculate(v, vendorOrders, deliveredOrder)
//	if err := v.ApplyMetrics(metrics); err != nil {
//	    return err
//	}
type PerformanceCalculator struct{}

// NewPerformanceCalculator creates a new PerformanceCalculator instance.
func NewPerformanceCalculator() PerformanceCalculator {
	return PerformanceCalculator{}
}

// Recalculate computes all four metrics for a vendor from its order
// population. The trigger is the order whose transition prompted the
// recomputation; its rating feeds the quality blend. Orders not belonging to
// other vendors are assumed filtered by the caller. May return an empty
// Metrics when no population supports any metric.
func (c PerformanceCalculator) Recalculate(
	v *vendor.Vendor,
	orders []*order.PurchaseOrder,
	trigger *order.PurchaseOrder,
) vendor.Metrics {
	return vendor.Metrics{
		OnTimeDeliveryRate:  c.onTimeDeliveryRate(orders),
		QualityRatingAvg:    c.qualityRatingAvg(v, orders, trigger),
		AverageResponseTime: c.averageResponseTime(orders),
		FulfillmentRate:     c.fulfillmentRate(orders),
	}
}

// RecalculateQuality computes the quality rating average only. Used by the
// rating operation, which must not touch the other three metrics.
func (c PerformanceCalculator) RecalculateQuality(
	v *vendor.Vendor,
	orders []*order.PurchaseOrder,
	trigger *order.PurchaseOrder,
) vendor.Metrics {
	return vendor.Metrics{
		QualityRatingAvg: c.qualityRatingAvg(v, orders, trigger),
	}
}

// onTimeDeliveryRate returns the share of delivered orders that met their
// expected delivery date, in percent. Nil when nothing was delivered yet.
func (c PerformanceCalculator) onTimeDeliveryRate(orders []*order.PurchaseOrder) *float64 {
	delivered, onTime := 0, 0
	for _, o := range orders {
		if o.Status() != order.Delivered {
			continue
		}
		delivered++
		if o.WasDeliveredOnTime() {
			onTime++
		}
	}
	if delivered == 0 {
		return nil
	}

	rate := round4(float64(onTime) / float64(delivered) * 100)
	return &rate
}

// qualityRatingAvg blends the trigger's rating with the vendor's prior
// average when one exists; otherwise it computes the population mean over
// delivered, rated orders. Nil when neither path applies.
func (c PerformanceCalculator) qualityRatingAvg(
	v *vendor.Vendor,
	orders []*order.PurchaseOrder,
	trigger *order.PurchaseOrder,
) *float64 {
	if prior := v.QualityRatingAvg(); prior != nil {
		if trigger == nil || trigger.QualityRating() == nil {
			return nil
		}
		avg := round4((*prior + float64(*trigger.QualityRating())) / 2)
		return &avg
	}

	sum, rated := 0, 0
	for _, o := range orders {
		if o.Status() != order.Delivered || o.QualityRating() == nil {
			continue
		}
		sum += *o.QualityRating()
		rated++
	}
	if rated == 0 {
		return nil
	}

	avg := round4(float64(sum) / float64(rated))
	return &avg
}

// averageResponseTime returns the mean issue-to-acknowledgment interval in
// hours over acknowledged-or-later orders. Nil when nothing was acknowledged.
func (c PerformanceCalculator) averageResponseTime(orders []*order.PurchaseOrder) *float64 {
	totalHours := 0.0
	acknowledged := 0
	for _, o := range orders {
		issuedAt, acknowledgedAt := o.IssueDate(), o.AcknowledgmentDate()
		if issuedAt == nil || acknowledgedAt == nil {
			continue
		}
		totalHours += acknowledgedAt.Sub(*issuedAt).Hours()
		acknowledged++
	}
	if acknowledged == 0 {
		return nil
	}

	avg := round4(totalHours / float64(acknowledged))
	return &avg
}

// fulfillmentRate returns delivered orders as a share of issued orders, in
// percent. Nil when nothing was issued.
func (c PerformanceCalculator) fulfillmentRate(orders []*order.PurchaseOrder) *float64 {
	issued, delivered := 0, 0
	for _, o := range orders {
		if o.IssueDate() == nil {
			continue
		}
		issued++
		if o.Status() == order.Delivered {
			delivered++
		}
	}
	if issued == 0 {
		return nil
	}

	rate := round4(float64(delivered) / float64(issued) * 100)
	return &rate
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
