// Package cart implements the working set of line items a customer is
// assembling before checkout.
package cart

import (
	"github.com/shopspring/decimal"

	"melmagia/internal/domain"
)

// Cart keeps at most one line item per product id. It is not safe for
// concurrent use; the owning store serializes access.
type Cart struct {
	items []domain.LineItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing line item for the
// product, or inserts a new line item with quantity 1. The operation is
// total over all products.
func (c *Cart) AddItem(product domain.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, domain.LineItem{Product: product, Quantity: 1})
}

// RemoveItem drops the line item for the product id. Absent ids are a
// no-op; this is the only path by which a line item leaves the cart
// short of Clear.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a delta to the matching line item's quantity,
// clamped to a minimum of 1. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Subtotal sums price times quantity over all line items.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Total())
	}
	return total
}
