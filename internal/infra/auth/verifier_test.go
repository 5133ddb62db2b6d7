package auth

import (
	"testing"

	domainerrors "cashreg/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateStrength_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{name: "minimum valid", password: "Abcdefg1", wantOK: true},
		{name: "no lowercase is still valid", password: "ABCDEFG1", wantOK: true},
		{name: "maximum length", password: "Abcdefghijklmnopqr12", wantOK: true},
		{name: "no uppercase or digit", password: "abcdefgh", wantOK: false},
		{name: "no digit", password: "Abcdefgh", wantOK: false},
		{name: "no uppercase", password: "abcdefg1", wantOK: false},
		{name: "too short", password: "Abcdef1", wantOK: false},
		{name: "too long", password: "Abcdefghijklmnopqr123", wantOK: false},
		{name: "non-alphanumeric", password: "Abcdefg1!", wantOK: false},
		{name: "empty", password: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStrength(tt.password)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
			}
		})
	}
}

func TestPlainVerifier_EncodeAndCheck(t *testing.T) {
	verifier := NewPlainVerifier()

	stored, err := verifier.Encode("Passw0rd")
	assert.NoError(t, err)
	assert.Equal(t, "Passw0rd", stored)

	assert.True(t, verifier.Check("Passw0rd", stored))
	assert.False(t, verifier.Check("passw0rd", stored))
	assert.False(t, verifier.Check("", stored))
}

func TestBcryptVerifier_EncodeAndCheck(t *testing.T) {
	verifier := NewBcryptVerifier(4) // minimum cost keeps the test fast

	stored, err := verifier.Encode("Passw0rd")
	assert.NoError(t, err)
	assert.NotEmpty(t, stored)
	assert.NotEqual(t, "Passw0rd", stored)

	assert.True(t, verifier.Check("Passw0rd", stored))
	assert.False(t, verifier.Check("WrongPass1", stored))
}

func TestBcryptVerifier_CostOutOfRangeFallsBack(t *testing.T) {
	verifier := NewBcryptVerifier(99)

	stored, err := verifier.Encode("Passw0rd")
	assert.NoError(t, err)
	assert.True(t, verifier.Check("Passw0rd", stored))
}
