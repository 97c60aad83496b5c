package shipment

import (
	"shipping/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = guard.ErrDefaultConstructorGuard

// Item represents a single product line within a shipment.
// Quantity is expected to be at least 1, but this is a semantic expectation
// only. It is not enforced here, matching the permissive intake contract.
// Items are attached once at shipment creation and never mutated afterwards.
type Item struct {
	product  string
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates a shipment line item for the given product and quantity.
func NewItem(product string, quantity int) Item {
	return Item{
		product:  product,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Product returns the product name of the line item.
func (i Item) Product() string {
	return i.product
}

// Quantity returns the ordered quantity of the line item.
func (i Item) Quantity() int {
	return i.quantity
}
