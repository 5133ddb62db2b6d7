package console

import (
	"context"
	"strings"

	"cashreg/internal/domain/entity"
	"cashreg/internal/usecase"

	"github.com/pkg/errors"
)

// session runs the per-cashier menu until the user exits the session or
// the input stream closes.
func (c *Console) session(ctx context.Context, register usecase.CashRegisterUsecase) error {
	for {
		c.println("\n[MENU] 1-Add 2-View 3-Remove 4-Update 5-Checkout 6-Exit")
		c.print("Select option: ")

		choice, err := c.readLine()
		if err != nil {
			return err
		}

		var handlerErr error
		switch choice {
		case "1":
			handlerErr = c.addProduct(ctx, register)
		case "2":
			c.displayCart(ctx, register)
		case "3":
			handlerErr = c.removeProduct(ctx, register)
		case "4":
			handlerErr = c.updateQuantity(ctx, register)
		case "5":
			handlerErr = c.checkout(ctx, register)
		case "6":
			return nil
		default:
			c.println("Invalid option. Try 1-6.")
		}

		if handlerErr != nil {
			return handlerErr
		}
	}
}

// addProduct reads a name once, then re-prompts price and quantity until
// each parses as positive.
func (c *Console) addProduct(ctx context.Context, register usecase.CashRegisterUsecase) error {
	c.println("\n[ADD PRODUCT]")

	c.print("Enter product name: ")
	line, err := c.readLine()
	if err != nil {
		return err
	}
	name := strings.TrimSpace(line)

	price, err := c.promptPositiveDecimal("Enter product price: ", "Invalid price input. Try again.", "Price must be > 0.")
	if err != nil {
		return err
	}

	quantity, err := c.promptPositiveInt("Enter product quantity: ", "Invalid quantity input. Try again.", "Quantity must be > 0.")
	if err != nil {
		return err
	}

	if _, err := register.AddItem(ctx, &usecase.AddItemInput{Name: name, UnitPrice: price, Quantity: quantity}); err != nil {
		c.reportError(err)

		return nil
	}

	c.println("Product added: " + name)

	return nil
}

// displayCart prints the cart 1-indexed with line totals, or the
// empty-cart message. It returns the items so callers can short-circuit.
func (c *Console) displayCart(ctx context.Context, register usecase.CashRegisterUsecase) []entity.Product {
	c.println("\n[CURRENT CART]")

	items := register.Items(ctx)
	if len(items) == 0 {
		c.println("Cart is empty.")

		return items
	}

	for i, item := range items {
		c.printf("%d. %s\n", i+1, item)
	}
	c.println("Total: " + entity.FormatAmount(register.Total(ctx)))

	return items
}

// removeProduct reads a 1-based index once; any invalid entry leaves the
// cart unchanged and returns to the menu.
func (c *Console) removeProduct(ctx context.Context, register usecase.CashRegisterUsecase) error {
	items := c.displayCart(ctx, register)
	if len(items) == 0 {
		return nil
	}

	c.print("Enter item number to remove: ")
	index, ok, err := c.readInt()
	if err != nil {
		return err
	}
	if !ok {
		c.println("Invalid input. Try again.")

		return nil
	}

	removed, removeErr := register.RemoveItem(ctx, index)
	if removeErr != nil {
		c.reportError(removeErr)

		return nil
	}

	c.println("Removed: " + removed.Name)

	return nil
}

// updateQuantity reads a 1-based index once, then a new quantity once;
// any invalid entry leaves the item unchanged.
func (c *Console) updateQuantity(ctx context.Context, register usecase.CashRegisterUsecase) error {
	items := c.displayCart(ctx, register)
	if len(items) == 0 {
		return nil
	}

	c.print("Enter item number to update: ")
	index, ok, err := c.readInt()
	if err != nil {
		return err
	}
	if !ok {
		c.println("Invalid input. Try again.")

		return nil
	}
	if index < 1 || index > len(items) {
		c.println("Invalid item number.")

		return nil
	}

	c.print("Enter new quantity: ")
	quantity, ok, err := c.readInt()
	if err != nil {
		return err
	}
	if !ok {
		c.println("Invalid input. Try again.")

		return nil
	}

	if updateErr := register.UpdateQuantity(ctx, index, quantity); updateErr != nil {
		c.reportError(updateErr)

		return nil
	}

	c.println("Quantity updated.")

	return nil
}

// checkout displays the cart, then keeps prompting for payment until a
// valid amount covers the total. The loop has no cancel; only a closed
// input stream breaks it.
func (c *Console) checkout(ctx context.Context, register usecase.CashRegisterUsecase) error {
	items := register.Items(ctx)
	if len(items) == 0 {
		c.println("Cannot checkout. Cart is empty.")

		return nil
	}

	c.displayCart(ctx, register)

	for {
		c.print("Enter payment amount: ")

		payment, ok, err := c.readDecimal()
		if err != nil {
			return err
		}
		if !ok {
			c.println("Invalid amount. Try again.")

			continue
		}

		out, checkoutErr := register.Checkout(ctx, payment)
		if checkoutErr != nil {
			var insufficient *usecase.InsufficientPaymentError
			if errors.As(checkoutErr, &insufficient) {
				c.printf("Insufficient. %s more needed.\n", entity.FormatAmount(insufficient.Shortfall))

				continue
			}

			c.reportError(checkoutErr)

			return nil
		}

		c.println("Change: " + entity.FormatAmount(out.Change))
		if out.LogErr != nil {
			c.println("Error logging transaction.")
		}

		return nil
	}
}
