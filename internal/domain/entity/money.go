package entity

import "github.com/shopspring/decimal"

// currencyPrefix is the literal marker printed before every amount. The
// register displays a single fixed currency; no locale handling.
const currencyPrefix = "P"

// FormatAmount renders a monetary amount with the currency marker and two
// decimal places, e.g. "P10.00".
func FormatAmount(amount decimal.Decimal) string {
	return currencyPrefix + amount.StringFixed(2)
}
