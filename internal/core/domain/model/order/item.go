package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Item is a value object describing one ordered line: an item name and a
// positive quantity. The order's total quantity is the sum over its items.
type Item struct {
	name     string
	quantity int
}

// NewItem creates an Item with validation.
// The name must not be empty and the quantity must be at least 1.
func NewItem(name string, quantity int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Item{name: name, quantity: quantity}, nil
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate checks that the item was created through NewItem.
func (i Item) Validate() error {
	if i.name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.quantity < 1 {
		return errs.NewValueIsInvalidError("item quantity")
	}
	return nil
}
