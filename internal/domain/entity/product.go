package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is one line item in a cart: a product name, its unit price and
// the quantity being purchased. The name is free-form and not validated;
// price and quantity are validated at the point of entry.
type Product struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal returns UnitPrice multiplied by Quantity.
func (p Product) LineTotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// String renders the line item the way it appears on cart displays and
// receipts: "3 x Pen @ P10.00 = P30.00".
func (p Product) String() string {
	return fmt.Sprintf("%d x %s @ %s = %s", p.Quantity, p.Name, FormatAmount(p.UnitPrice), FormatAmount(p.LineTotal()))
}
