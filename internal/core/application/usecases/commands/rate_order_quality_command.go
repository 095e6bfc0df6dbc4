package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrRateOrderQualityCommandIsNotConstructed = errors.New(
	"RateOrderQualityCommand must be created via NewRateOrderQualityCommand constructor",
)

// RateOrderQualityCommand represents a buyer rating the quality of a
// delivered order on a 1-5 scale. The rating is immutable once set.
type RateOrderQualityCommand struct { //nolint:recvcheck //using for validation
	poNumber kernel.Code
	rating   int

	guard guard.ConstructorGuard
}

// NewRateOrderQualityCommand creates a command to rate a delivered order.
// Range validation of the rating itself happens in the domain, so an
// out-of-range value fails on Handle, not here.
func NewRateOrderQualityCommand(poNumber kernel.Code, rating int) (RateOrderQualityCommand, error) {
	if err := poNumber.Validate(); err != nil {
		return RateOrderQualityCommand{}, err
	}

	return RateOrderQualityCommand{
		poNumber: poNumber,
		rating:   rating,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderQualityCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderQualityCommandIsNotConstructed)
}

// PONumber returns the purchase order number.
func (c RateOrderQualityCommand) PONumber() kernel.Code {
	return c.poNumber
}

// Rating returns the quality rating to record.
func (c RateOrderQualityCommand) Rating() int {
	return c.rating
}
