package order

import (
	"errors"
	"fmt"

	"procurement/internal/pkg/errs"
)

// Typed transition failures. Callers classify them with errors.Is; they are
// surfaced to clients as rejected requests and never retried.
var (
	// ErrAlreadyProcessed indicates the order already moved past the requested transition.
	ErrAlreadyProcessed = errors.New("order already processed")

	// ErrNotYetIssued indicates an acknowledgment was attempted on a pending order.
	ErrNotYetIssued = errors.New("order not yet issued")

	// ErrNotYetAcknowledged indicates a delivery was attempted before acknowledgment.
	ErrNotYetAcknowledged = errors.New("order not yet acknowledged")

	// ErrNotYetDelivered indicates a quality rating was attempted before delivery.
	ErrNotYetDelivered = errors.New("order not yet delivered")

	// ErrAlreadyCancelled indicates a quality rating was attempted on a cancelled order.
	ErrAlreadyCancelled = errors.New("order already cancelled")
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct procurement workflow.
//
// State transitions:
//
//	PENDING ──> ISSUED ──> ACKNOWLEDGED ──> DELIVERED
//	   │           │            │
//	   └───────────┴────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Transitions are monotonic: no
// transition may revert a later state to an earlier one.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order.
	// Pending orders have no vendor associated yet.
	Pending

	// Issued indicates the order has been issued to a vendor.
	Issued

	// Acknowledged indicates the vendor has acknowledged the issued order.
	Acknowledged

	// Delivered indicates the vendor has delivered the order. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "UNKNOWN",
		Pending:      "PENDING",
		Issued:       "ISSUED",
		Acknowledged: "ACKNOWLEDGED",
		Delivered:    "DELIVERED",
		Cancelled:    "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "PENDING",
		Issued:       "ISSUED",
		Acknowledged: "ACKNOWLEDGED",
		Delivered:    "DELIVERED",
		Cancelled:    "CANCELLED",
	}
}

// StatusFromString parses the persisted/display representation of a status.
// Returns an error for values outside the defined lifecycle.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase name of the status, e.g. "ACKNOWLEDGED".
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Issue transitions the status to Issued.
//
// Valid transitions:
//   - Pending -> Issued
//
// Returns ErrAlreadyProcessed if the order already left Pending.
func (s Status) Issue() (Status, error) {
	switch s {
	case Pending:
		return Issued, nil
	case Issued, Acknowledged, Delivered, Cancelled:
		return Unknown, fmt.Errorf("%w: cannot issue order in status %s", ErrAlreadyProcessed, s)
	default:
		return Unknown, s.Validate()
	}
}

// Acknowledge transitions the status to Acknowledged.
//
// Valid transitions:
//   - Issued -> Acknowledged
//
// Returns ErrNotYetIssued for pending orders and ErrAlreadyProcessed
// once the order moved past Issued.
func (s Status) Acknowledge() (Status, error) {
	switch s {
	case Issued:
		return Acknowledged, nil
	case Pending:
		return Unknown, fmt.Errorf("%w: cannot acknowledge order in status %s", ErrNotYetIssued, s)
	case Acknowledged, Delivered, Cancelled:
		return Unknown, fmt.Errorf("%w: cannot acknowledge order in status %s", ErrAlreadyProcessed, s)
	default:
		return Unknown, s.Validate()
	}
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Acknowledged -> Delivered
//
// Returns ErrNotYetAcknowledged before acknowledgment and
// ErrAlreadyProcessed once the order is terminal.
func (s Status) Deliver() (Status, error) {
	switch s {
	case Acknowledged:
		return Delivered, nil
	case Pending, Issued:
		return Unknown, fmt.Errorf("%w: cannot deliver order in status %s", ErrNotYetAcknowledged, s)
	case Delivered, Cancelled:
		return Unknown, fmt.Errorf("%w: cannot deliver order in status %s", ErrAlreadyProcessed, s)
	default:
		return Unknown, s.Validate()
	}
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Issued -> Cancelled
//   - Acknowledged -> Cancelled
//
// Returns ErrAlreadyProcessed for terminal orders.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Issued, Acknowledged:
		return Cancelled, nil
	case Delivered, Cancelled:
		return Unknown, fmt.Errorf("%w: cannot cancel order in status %s", ErrAlreadyProcessed, s)
	default:
		return Unknown, s.Validate()
	}
}

// ValidateRateable checks whether an order in this status may receive a
// quality rating. Only delivered orders are rateable: earlier states fail
// with ErrNotYetDelivered, cancelled orders with ErrAlreadyCancelled.
func (s Status) ValidateRateable() error {
	switch s {
	case Delivered:
		return nil
	case Pending, Issued, Acknowledged:
		return fmt.Errorf("%w: cannot rate order in status %s", ErrNotYetDelivered, s)
	case Cancelled:
		return fmt.Errorf("%w: cannot rate order in status %s", ErrAlreadyCancelled, s)
	default:
		return s.Validate()
	}
}
