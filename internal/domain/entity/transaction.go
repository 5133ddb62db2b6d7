package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRecord is the durable receipt for one completed checkout. It
// snapshots the purchased items so the written record stays self-contained
// after the cart is cleared. Records are write-once: the receipt log only
// ever appends them.
type TransactionRecord struct {
	ID        uuid.UUID
	Cashier   string
	Timestamp time.Time
	Items     []Product
	Total     decimal.Decimal
	Paid      decimal.Decimal
	Change    decimal.Decimal
}

// NewTransactionRecord snapshots the given items into a receipt for the
// cashier. Change is derived as paid minus total.
func NewTransactionRecord(cashier string, items []Product, total, paid decimal.Decimal) *TransactionRecord {
	snapshot := make([]Product, len(items))
	copy(snapshot, items)

	return &TransactionRecord{
		ID:        uuid.New(),
		Cashier:   cashier,
		Timestamp: time.Now(),
		Items:     snapshot,
		Total:     total,
		Paid:      paid,
		Change:    paid.Sub(total),
	}
}
