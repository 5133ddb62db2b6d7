package impl

import (
	"context"
	"log/slog"

	"cashreg/internal/domain/entity"
	domainerrors "cashreg/internal/domain/errors"
	"cashreg/internal/domain/repository"
	"cashreg/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cashRegisterService implements the CashRegisterUsecase interface for one
// cashier session. It owns the session's cart.
type cashRegisterService struct {
	cashier    string
	cart       *entity.Cart
	receiptLog repository.ReceiptLog
	logger     *slog.Logger
}

// CashRegisterFactoryParams holds dependencies shared by all register
// sessions, injected by Fx.
type CashRegisterFactoryParams struct {
	fx.In

	ReceiptLog repository.ReceiptLog
	Logger     *slog.Logger
}

// NewCashRegisterFactory returns a factory that builds one register
// session per authenticated cashier.
func NewCashRegisterFactory(params CashRegisterFactoryParams) usecase.CashRegisterFactory {
	return func(cashier string) usecase.CashRegisterUsecase {
		return &cashRegisterService{
			cashier:    cashier,
			cart:       entity.NewCart(),
			receiptLog: params.ReceiptLog,
			logger:     params.Logger,
		}
	}
}

// Cashier returns the authenticated username owning this session.
func (srv *cashRegisterService) Cashier() string {
	return srv.cashier
}

// AddItem appends a line item to the cart. Price and quantity are
// validated again here even though the console loops until they parse.
func (srv *cashRegisterService) AddItem(_ context.Context, input *usecase.AddItemInput) (*entity.Product, error) {
	if !input.UnitPrice.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPrice, "price must be positive")
	}
	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be positive")
	}

	item := entity.Product{
		Name:      input.Name,
		UnitPrice: input.UnitPrice,
		Quantity:  input.Quantity,
	}
	srv.cart.Add(item)

	srv.logger.Debug("Item added to cart",
		slog.String("cashier", srv.cashier),
		slog.String("name", item.Name),
		slog.Int("quantity", item.Quantity))

	return &item, nil
}

// Items returns a snapshot of the cart in insertion order.
func (srv *cashRegisterService) Items(_ context.Context) []entity.Product {
	return srv.cart.Items()
}

// Total returns the sum of all line totals.
func (srv *cashRegisterService) Total(_ context.Context) decimal.Decimal {
	return srv.cart.Total()
}

// RemoveItem deletes the line item at the 1-based index. An out-of-range
// index leaves the cart unchanged.
func (srv *cashRegisterService) RemoveItem(_ context.Context, index int) (*entity.Product, error) {
	removed, ok := srv.cart.Remove(index)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidItemNumber, "index %d out of range", index)
	}

	srv.logger.Debug("Item removed from cart",
		slog.String("cashier", srv.cashier),
		slog.String("name", removed.Name))

	return &removed, nil
}

// UpdateQuantity replaces the quantity of the line item at the 1-based
// index. A non-positive quantity is rejected and the item is unchanged.
func (srv *cashRegisterService) UpdateQuantity(_ context.Context, index, quantity int) error {
	if _, ok := srv.cart.Get(index); !ok {
		return errors.Wrapf(domainerrors.ErrInvalidItemNumber, "index %d out of range", index)
	}
	if quantity <= 0 {
		return errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be positive")
	}

	srv.cart.UpdateQuantity(index, quantity)

	return nil
}

// Checkout completes the sale. On sufficient payment the transaction
// record is appended to the receipt log and the cart is emptied. A log
// write failure is reported through CheckoutOutput.LogErr but does not
// roll anything back: the cart is still cleared and the payment stands.
func (srv *cashRegisterService) Checkout(ctx context.Context, payment decimal.Decimal) (*usecase.CheckoutOutput, error) {
	if srv.cart.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "checkout refused")
	}

	total := srv.cart.Total()
	if payment.LessThan(total) {
		return nil, &usecase.InsufficientPaymentError{Shortfall: total.Sub(payment)}
	}

	record := entity.NewTransactionRecord(srv.cashier, srv.cart.Items(), total, payment)

	logErr := srv.receiptLog.Append(ctx, record)
	if logErr != nil {
		srv.logger.Error("Failed to append transaction record",
			slog.String("cashier", srv.cashier),
			slog.String("transaction_id", record.ID.String()),
			slog.Any("error", logErr))
	}

	srv.cart.Clear()

	srv.logger.Info("Checkout completed",
		slog.String("cashier", srv.cashier),
		slog.String("transaction_id", record.ID.String()),
		slog.String("total", record.Total.StringFixed(2)),
		slog.String("change", record.Change.StringFixed(2)))

	return &usecase.CheckoutOutput{
		Record: record,
		Change: record.Change,
		LogErr: logErr,
	}, nil
}
