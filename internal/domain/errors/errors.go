// Package errors defines the application-specific error types shared by the
// usecase and delivery layers.
package errors

import "cashreg/internal/errors"

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(errorCode, message string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// Signup-related errors
	ErrUsernameLength = NewBaseError(
		"USERNAME_LENGTH",
		"Invalid username. Must be 5-15 characters long.",
	)

	ErrUsernameTaken = NewBaseError(
		"USERNAME_TAKEN",
		"Username already exists. Please choose a different one.",
	)

	ErrPasswordPolicy = NewBaseError(
		"PASSWORD_POLICY",
		"Invalid password. Must include 1 uppercase letter and 1 number.",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		"INVALID_CREDENTIALS",
		"Login failed. Invalid credentials.",
	)

	// Cart-related errors
	ErrInvalidItemNumber = NewBaseError(
		"INVALID_ITEM_NUMBER",
		"Invalid item number.",
	)

	ErrInvalidPrice = NewBaseError(
		"INVALID_PRICE",
		"Price must be > 0.",
	)

	ErrInvalidQuantity = NewBaseError(
		"INVALID_QUANTITY",
		"Quantity must be > 0.",
	)

	// Checkout-related errors
	ErrEmptyCart = NewBaseError(
		"EMPTY_CART",
		"Cannot checkout. Cart is empty.",
	)

	ErrReceiptWrite = NewBaseError(
		"RECEIPT_WRITE_FAILED",
		"Error logging transaction.",
	)
)
