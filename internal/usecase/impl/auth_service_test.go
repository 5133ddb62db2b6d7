package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "cashreg/internal/domain/errors"
	"cashreg/internal/infra/auth"
	"cashreg/internal/infra/persistence/memory"
	"cashreg/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) usecase.AuthUsecase {
	t.Helper()

	return NewAuthService(AuthServiceParams{
		Credentials: memory.NewCredentialRepository(),
		Verifier:    auth.NewPlainVerifier(),
		Logger:      newDiscardLogger(),
	})
}

func TestAuthService_SignUpAndLogin(t *testing.T) {
	service := createTestAuthService(t)
	ctx := context.Background()

	out, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice123", Password: "Passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, "alice123", out.User.Username)

	login, err := service.Login(ctx, &usecase.LoginInput{Username: "alice123", Password: "Passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, "alice123", login.Username)
}

func TestAuthService_ValidateUsername_LengthBoundaries(t *testing.T) {
	service := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		wantOK   bool
	}{
		{name: "length 4 rejected", username: "abcd", wantOK: false},
		{name: "length 5 accepted", username: "abcde", wantOK: true},
		{name: "length 15 accepted", username: strings.Repeat("a", 15), wantOK: true},
		{name: "length 16 rejected", username: strings.Repeat("a", 16), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateUsername(ctx, tt.username)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrUsernameLength))
			}
		})
	}
}

func TestAuthService_SignUp_DuplicateUsername(t *testing.T) {
	service := createTestAuthService(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice123", Password: "Passw0rd"})
	require.NoError(t, err)

	_, err = service.SignUp(ctx, &usecase.SignUpInput{Username: "alice123", Password: "Other1Aa"})
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	err = service.ValidateUsername(ctx, "alice123")
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_SignUp_PasswordPolicy(t *testing.T) {
	service := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{name: "no uppercase or digit rejected", password: "abcdefgh", wantOK: false},
		{name: "minimum valid accepted", password: "Abcdefg1", wantOK: true},
		{name: "no lowercase still accepted", password: "ABCDEFG1", wantOK: true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username := "cashier" + strings.Repeat("x", i+1)
			_, err := service.SignUp(ctx, &usecase.SignUpInput{Username: username, Password: tt.password})
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
			}
		})
	}
}

func TestAuthService_SignUp_TrimsUsername(t *testing.T) {
	service := createTestAuthService(t)
	ctx := context.Background()

	out, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "  alice123  ", Password: "Passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, "alice123", out.User.Username)
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	service := createTestAuthService(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice123", Password: "Passw0rd"})
	require.NoError(t, err)

	// Unknown user and wrong password must be indistinguishable.
	_, unknownErr := service.Login(ctx, &usecase.LoginInput{Username: "nobody99", Password: "Passw0rd"})
	_, wrongErr := service.Login(ctx, &usecase.LoginInput{Username: "alice123", Password: "WrongPass1"})

	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_CaseSensitiveUsername(t *testing.T) {
	service := createTestAuthService(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice123", Password: "Passw0rd"})
	require.NoError(t, err)

	_, err = service.Login(ctx, &usecase.LoginInput{Username: "Alice123", Password: "Passw0rd"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_WithBcryptVerifier(t *testing.T) {
	service := NewAuthService(AuthServiceParams{
		Credentials: memory.NewCredentialRepository(),
		Verifier:    auth.NewBcryptVerifier(4),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	out, err := service.SignUp(ctx, &usecase.SignUpInput{Username: "alice123", Password: "Passw0rd"})
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", out.User.Password)

	_, err = service.Login(ctx, &usecase.LoginInput{Username: "alice123", Password: "Passw0rd"})
	assert.NoError(t, err)
}
