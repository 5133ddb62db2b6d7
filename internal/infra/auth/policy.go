// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	domainerrors "cashreg/internal/domain/errors"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 20
)

// validateStrength enforces the signup password policy shared by all
// verifier implementations: 8-20 characters, ASCII letters and digits only,
// at least one uppercase letter and at least one digit. Lowercase letters
// are allowed but not required.
func validateStrength(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return domainerrors.ErrPasswordPolicy.WrapMessage("password length out of range")
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return domainerrors.ErrPasswordPolicy.WrapMessage("password contains non-alphanumeric character")
		}
	}

	if !hasUpper || !hasDigit {
		return domainerrors.ErrPasswordPolicy.WrapMessage("password missing required character class")
	}

	return nil
}
