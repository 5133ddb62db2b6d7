// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cashreg/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new cashier.
type SignUpInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a cashier to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created cashier account.
type SignUpOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated cashier identity.
type LoginOutput struct {
	Username string
}

// AuthUsecase defines the interface for cashier account operations.
// This is the contract that the console delivery depends on.
type AuthUsecase interface {
	// ValidateUsername checks a candidate username for signup: length 5-15
	// and not already taken. The console re-prompts on a specific error
	// until this passes.
	ValidateUsername(ctx context.Context, username string) error

	// SignUp validates both fields again and creates the account.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Login authenticates a single attempt. Any mismatch yields one generic
	// invalid-credentials error so callers cannot tell an unknown username
	// from a wrong password.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
