package auth

import (
	"crypto/subtle"

	"cashreg/internal/domain/service"
)

// plainVerifier stores passwords verbatim and compares them for equality.
// This matches the register's default storage model: credentials live only
// in process memory and are discarded on exit.
type plainVerifier struct{}

// NewPlainVerifier is the constructor for plainVerifier.
// It returns the implementation as a service.PasswordVerifier interface.
func NewPlainVerifier() service.PasswordVerifier {
	return &plainVerifier{}
}

// ValidateStrength checks the candidate against the signup policy.
func (v *plainVerifier) ValidateStrength(password string) error {
	return validateStrength(password)
}

// Encode returns the password unchanged.
func (v *plainVerifier) Encode(password string) (string, error) {
	return password, nil
}

// Check compares the password with the stored value in constant time.
func (v *plainVerifier) Check(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
