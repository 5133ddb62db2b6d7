package auth

import (
	"golang.org/x/crypto/bcrypt"

	"cashreg/internal/domain/service"
)

// bcryptVerifier stores passwords as bcrypt hashes. Enabled through the
// auth.hashPasswords config switch; authentication outcomes are identical
// to the plaintext verifier.
type bcryptVerifier struct {
	cost int
}

// NewBcryptVerifier is the constructor for bcryptVerifier.
// It returns the implementation as a service.PasswordVerifier interface.
func NewBcryptVerifier(cost int) service.PasswordVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptVerifier{cost: cost}
}

// ValidateStrength checks the candidate against the signup policy.
func (v *bcryptVerifier) ValidateStrength(password string) error {
	return validateStrength(password)
}

// Encode generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (v *bcryptVerifier) Encode(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (v *bcryptVerifier) Check(password, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
