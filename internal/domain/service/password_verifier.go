// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordVerifier defines the interface for credential encoding and
// verification. It abstracts how passwords are stored at rest (plaintext or
// bcrypt) so the signup/login flow never touches the scheme directly.
type PasswordVerifier interface {
	// ValidateStrength checks a candidate password against the signup
	// policy: 8-20 characters, ASCII letters and digits only, at least one
	// uppercase letter and at least one digit. Lowercase is not required.
	ValidateStrength(password string) error

	// Encode transforms a plaintext password into its stored form.
	Encode(password string) (string, error)

	// Check compares a plaintext password with a stored credential.
	Check(password, stored string) bool
}
