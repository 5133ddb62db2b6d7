package usecase

import (
	"context"
	"fmt"

	"cashreg/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AddItemInput defines the data for one new cart line item.
type AddItemInput struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// --- Output DTOs ---

// CheckoutOutput returns the completed transaction. LogErr carries a
// receipt-log write failure: checkout success is independent of log
// success, so the error is reported, never returned.
type CheckoutOutput struct {
	Record *entity.TransactionRecord
	Change decimal.Decimal
	LogErr error
}

// InsufficientPaymentError is returned by Checkout when the tendered
// amount does not cover the cart total.
type InsufficientPaymentError struct {
	Shortfall decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment, %s more needed", e.Shortfall.StringFixed(2))
}

// CashRegisterUsecase defines the cart and checkout operations of one
// cashier session. Implementations own the session's cart; indexes are
// 1-based throughout.
type CashRegisterUsecase interface {
	// Cashier returns the authenticated username owning this session.
	Cashier() string

	// AddItem appends a line item to the cart.
	AddItem(ctx context.Context, input *AddItemInput) (*entity.Product, error)

	// Items returns a snapshot of the cart in insertion order.
	Items(ctx context.Context) []entity.Product

	// Total returns the sum of all line totals.
	Total(ctx context.Context) decimal.Decimal

	// RemoveItem deletes the line item at the given index and returns it.
	RemoveItem(ctx context.Context, index int) (*entity.Product, error)

	// UpdateQuantity replaces the quantity of the line item at the given
	// index. Non-positive quantities are rejected and leave the item
	// unchanged.
	UpdateQuantity(ctx context.Context, index, quantity int) error

	// Checkout completes the sale: on sufficient payment it appends a
	// transaction record to the receipt log and empties the cart. An empty
	// cart or insufficient payment leaves all state unchanged.
	Checkout(ctx context.Context, payment decimal.Decimal) (*CheckoutOutput, error)
}

// CashRegisterFactory builds a register session for an authenticated
// cashier. One session owns exactly one cart.
type CashRegisterFactory func(cashier string) CashRegisterUsecase
