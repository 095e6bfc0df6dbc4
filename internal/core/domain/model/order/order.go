package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder instance was
	// not created through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor",
	)

	// ErrVendorMismatch indicates a transition named a vendor different from the
	// vendor the order is currently associated with.
	ErrVendorMismatch = errors.New("vendor does not match the order's vendor")

	// ErrAlreadyRated indicates the order's quality rating was already set.
	// Ratings are settable exactly once.
	ErrAlreadyRated = errors.New("order already rated")
)

// DefaultDeliveryLeadTime is added to the order date when no expected delivery
// date is supplied at creation.
const DefaultDeliveryLeadTime = 21 * 24 * time.Hour

// PurchaseOrder is the aggregate root tracked through the procurement lifecycle.
// It owns the ordered items, the lifecycle timestamps and the status state
// machine; all transitions go through its methods so the invariants in the
// package documentation cannot be bypassed.
//
// Transition dates (issue, acknowledgment, delivery) are supplied by the
// caller rather than generated here. That keeps demo drivers and backfills
// possible but makes the dates a trust boundary: a hardened deployment
// should generate them server-side.
type PurchaseOrder struct {
	// poNumber is the unique, immutable purchase order number
	poNumber kernel.Code

	// vendorCode is the associated vendor, nil only while Pending
	vendorCode *kernel.Code

	// orderDate is the creation time of the order
	orderDate time.Time

	// expectedDeliveryDate defaults to orderDate plus DefaultDeliveryLeadTime
	expectedDeliveryDate time.Time

	// actualDeliveryDate is set by Deliver
	actualDeliveryDate *time.Time

	// issueDate is set by Issue
	issueDate *time.Time

	// acknowledgmentDate is set by Acknowledge
	acknowledgmentDate *time.Time

	// items are the ordered lines; quantity is their sum
	items    []Item
	quantity int

	// status is the current lifecycle state
	status Status

	// qualityRating is settable once, only after delivery (1-5)
	qualityRating *int

	guard guard.ConstructorGuard
}

// NewPurchaseOrder creates a pending order with validation.
//
// The PO number must be a valid Code, the order date must be set and at least
// one valid item is required. When expectedDeliveryDate is nil the expected
// delivery date defaults to orderDate + 21 days. The order's quantity is the
// sum of the item quantities.
func NewPurchaseOrder(
	poNumber kernel.Code,
	orderDate time.Time,
	expectedDeliveryDate *time.Time,
	items []Item,
) (*PurchaseOrder, error) {
	if err := poNumber.Validate(); err != nil {
		return nil, err
	}
	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderDate")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	quantity := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		quantity += item.Quantity()
	}

	expected := orderDate.Add(DefaultDeliveryLeadTime)
	if expectedDeliveryDate != nil && !expectedDeliveryDate.IsZero() {
		expected = *expectedDeliveryDate
	}

	return &PurchaseOrder{
		poNumber:             poNumber,
		orderDate:            orderDate,
		expectedDeliveryDate: expected,
		items:                append([]Item(nil), items...),
		quantity:             quantity,
		status:               Pending,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// RestorePurchaseOrder reconstructs an order from persistent storage,
// preserving its lifecycle state and timestamps. Unlike NewPurchaseOrder it
// accepts any valid status and the already-computed quantity.
func RestorePurchaseOrder(
	poNumber kernel.Code,
	vendorCode *kernel.Code,
	orderDate time.Time,
	expectedDeliveryDate time.Time,
	actualDeliveryDate *time.Time,
	issueDate *time.Time,
	acknowledgmentDate *time.Time,
	items []Item,
	quantity int,
	status Status,
	qualityRating *int,
) (*PurchaseOrder, error) {
	if err := errors.Join(poNumber.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &PurchaseOrder{
		poNumber:             poNumber,
		vendorCode:           vendorCode,
		orderDate:            orderDate,
		expectedDeliveryDate: expectedDeliveryDate,
		actualDeliveryDate:   actualDeliveryDate,
		issueDate:            issueDate,
		acknowledgmentDate:   acknowledgmentDate,
		items:                append([]Item(nil), items...),
		quantity:             quantity,
		status:               status,
		qualityRating:        qualityRating,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PurchaseOrder was properly constructed.
func (o *PurchaseOrder) Validate() error {
	if o == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return o.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// IsEqual compares two orders by PO number.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.poNumber.IsEqual(other.poNumber)
}

// PONumber returns the order's unique purchase order number.
func (o *PurchaseOrder) PONumber() kernel.Code {
	return o.poNumber
}

// VendorCode returns the associated vendor's code, nil while Pending.
func (o *PurchaseOrder) VendorCode() *kernel.Code {
	if o.vendorCode == nil {
		return nil
	}
	code := *o.vendorCode
	return &code
}

// OrderDate returns the creation time of the order.
func (o *PurchaseOrder) OrderDate() time.Time {
	return o.orderDate
}

// ExpectedDeliveryDate returns the expected delivery date.
func (o *PurchaseOrder) ExpectedDeliveryDate() time.Time {
	return o.expectedDeliveryDate
}

// ActualDeliveryDate returns the delivery time, nil until Delivered.
func (o *PurchaseOrder) ActualDeliveryDate() *time.Time {
	return copyTime(o.actualDeliveryDate)
}

// IssueDate returns the issue time, nil until Issued.
func (o *PurchaseOrder) IssueDate() *time.Time {
	return copyTime(o.issueDate)
}

// AcknowledgmentDate returns the acknowledgment time, nil until Acknowledged.
func (o *PurchaseOrder) AcknowledgmentDate() *time.Time {
	return copyTime(o.acknowledgmentDate)
}

// Items returns a copy of the ordered lines.
func (o *PurchaseOrder) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Quantity returns the sum of the item quantities.
func (o *PurchaseOrder) Quantity() int {
	return o.quantity
}

// Status returns the current lifecycle state.
func (o *PurchaseOrder) Status() Status {
	return o.status
}

// QualityRating returns the quality rating, nil until rated.
func (o *PurchaseOrder) QualityRating() *int {
	if o.qualityRating == nil {
		return nil
	}
	rating := *o.qualityRating
	return &rating
}

// WasDeliveredOnTime reports whether the order was delivered no later than
// its expected delivery date. Returns false while undelivered.
func (o *PurchaseOrder) WasDeliveredOnTime() bool {
	return o.actualDeliveryDate != nil && !o.actualDeliveryDate.After(o.expectedDeliveryDate)
}

// Issue associates the order with a vendor and moves it to Issued.
//
// Legal only from Pending; any later state fails with ErrAlreadyProcessed.
// The issue date is caller-supplied and stored verbatim.
func (o *PurchaseOrder) Issue(vendorCode kernel.Code, issuedAt time.Time) error {
	if err := vendorCode.Validate(); err != nil {
		return err
	}
	if issuedAt.IsZero() {
		return errs.NewValueIsRequiredError("issueDate")
	}

	newStatus, err := o.status.Issue()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vendorCode = &vendorCode
	o.issueDate = &issuedAt
	return nil
}

// Acknowledge records the vendor's acknowledgment and moves the order to
// Acknowledged. Fails with ErrNotYetIssued from Pending, ErrAlreadyProcessed
// from later states, and ErrVendorMismatch when vendorCode differs from the
// order's vendor.
func (o *PurchaseOrder) Acknowledge(vendorCode kernel.Code, acknowledgedAt time.Time) error {
	if acknowledgedAt.IsZero() {
		return errs.NewValueIsRequiredError("acknowledgmentDate")
	}

	newStatus, err := o.status.Acknowledge()
	if err != nil {
		return err
	}

	if err := o.validateVendor(vendorCode); err != nil {
		return err
	}

	o.status = newStatus
	o.acknowledgmentDate = &acknowledgedAt
	return nil
}

// Deliver records the delivery and moves the order to Delivered.
// Fails with ErrNotYetAcknowledged from Pending or Issued, ErrAlreadyProcessed
// from terminal states, and ErrVendorMismatch on a vendor mismatch.
func (o *PurchaseOrder) Deliver(vendorCode kernel.Code, deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("actualDeliveryDate")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if err := o.validateVendor(vendorCode); err != nil {
		return err
	}

	o.status = newStatus
	o.actualDeliveryDate = &deliveredAt
	return nil
}

// Cancel moves the order to Cancelled. Legal from Pending, Issued and
// Acknowledged; terminal states fail with ErrAlreadyProcessed. The vendor
// match is only enforced once the order has a vendor: a pending order has
// none and may be cancelled outright.
func (o *PurchaseOrder) Cancel(vendorCode kernel.Code) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if o.vendorCode != nil {
		if err := o.validateVendor(vendorCode); err != nil {
			return err
		}
	}

	o.status = newStatus
	return nil
}

// RateQuality sets the order's quality rating (1-5). Legal only on delivered
// orders (ErrNotYetDelivered / ErrAlreadyCancelled otherwise) and only once
// (ErrAlreadyRated).
func (o *PurchaseOrder) RateQuality(rating int) error {
	if err := o.status.ValidateRateable(); err != nil {
		return err
	}
	if o.qualityRating != nil {
		return fmt.Errorf("%w: rating is already %d", ErrAlreadyRated, *o.qualityRating)
	}
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("qualityRating", rating, 1, 5)
	}

	o.qualityRating = &rating
	return nil
}

// validateVendor checks that the supplied vendor matches the order's vendor.
func (o *PurchaseOrder) validateVendor(vendorCode kernel.Code) error {
	if o.vendorCode == nil || !o.vendorCode.IsEqual(vendorCode) {
		return fmt.Errorf("%w: %s", ErrVendorMismatch, vendorCode)
	}
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}
