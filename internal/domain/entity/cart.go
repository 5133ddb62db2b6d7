package entity

import "github.com/shopspring/decimal"

// Cart is the ordered sequence of line items for one cashier session.
// Insertion order is significant: display and removal both address items by
// their 1-based position.
type Cart struct {
	items []Product
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line item to the end of the cart.
func (c *Cart) Add(item Product) {
	c.items = append(c.items, item)
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Product {
	items := make([]Product, len(c.items))
	copy(items, c.items)

	return items
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Get returns the line item at the 1-based index.
func (c *Cart) Get(index int) (Product, bool) {
	if !c.validIndex(index) {
		return Product{}, false
	}

	return c.items[index-1], true
}

// Remove deletes the line item at the 1-based index, shifting subsequent
// items to close the gap. It returns the removed item.
func (c *Cart) Remove(index int) (Product, bool) {
	if !c.validIndex(index) {
		return Product{}, false
	}

	removed := c.items[index-1]
	c.items = append(c.items[:index-1], c.items[index:]...)

	return removed, true
}

// UpdateQuantity replaces the quantity of the line item at the 1-based
// index. The caller is responsible for ensuring quantity is positive.
func (c *Cart) UpdateQuantity(index, quantity int) bool {
	if !c.validIndex(index) {
		return false
	}

	c.items[index-1].Quantity = quantity

	return true
}

// Total returns the sum of all line totals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) validIndex(index int) bool {
	return index >= 1 && index <= len(c.items)
}
