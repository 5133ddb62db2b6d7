// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"cashreg/internal/domain/entity"
	domainerrors "cashreg/internal/domain/errors"
	"cashreg/internal/domain/repository"
	"cashreg/internal/domain/service"
	"cashreg/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 5
	maxUsernameLength = 15
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentials repository.CredentialRepository
	verifier    service.PasswordVerifier
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Credentials repository.CredentialRepository
	Verifier    service.PasswordVerifier
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentials: params.Credentials,
		verifier:    params.Verifier,
		logger:      params.Logger,
	}
}

// ValidateUsername checks length bounds and uniqueness for a signup
// candidate. The username is matched case-sensitively and any characters
// are allowed; only the length is constrained.
func (srv *authService) ValidateUsername(ctx context.Context, username string) error {
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return errors.Wrap(domainerrors.ErrUsernameLength, "username length out of range")
	}

	_, err := srv.credentials.FindByUsername(ctx, username)
	if err == nil {
		return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

// SignUp validates the input and creates the cashier account. Validation
// precedes mutation, so no rollback is needed.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	username := strings.TrimSpace(input.Username)

	if err := srv.ValidateUsername(ctx, username); err != nil {
		return nil, err
	}

	if err := srv.verifier.ValidateStrength(input.Password); err != nil {
		srv.logger.Warn("Password validation failed during signup", slog.String("username", username))

		return nil, err
	}

	stored, err := srv.verifier.Encode(input.Password)
	if err != nil {
		srv.logger.Error("Failed to encode password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to encode password during signup")
	}

	newUser := &entity.User{
		Username: username,
		Password: stored,
	}

	if err := srv.credentials.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.logger.Info("Cashier registered", slog.String("username", username))

	return &usecase.SignUpOutput{User: newUser}, nil
}

// Login authenticates a single attempt against the credential store. Every
// failure maps to the same generic error on purpose: the caller must not
// learn whether the username or the password was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.credentials.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.verifier.Check(input.Password, user.Password) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.logger.Info("Cashier logged in", slog.String("username", user.Username))

	return &usecase.LoginOutput{Username: user.Username}, nil
}
