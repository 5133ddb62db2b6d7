// Package console implements the interactive register console: the
// top-level signup/login menu and the per-session cart menu.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cashreg/internal/delivery"
	domainerrors "cashreg/internal/domain/errors"
	"cashreg/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the console delivery, injected by Fx.
type Params struct {
	fx.In

	Auth            usecase.AuthUsecase
	RegisterFactory usecase.CashRegisterFactory
	Logger          *slog.Logger
}

// Console drives the line-oriented menus over an input and output stream.
// All reads block until the next line arrives; there is no timeout.
type Console struct {
	auth            usecase.AuthUsecase
	registerFactory usecase.CashRegisterFactory
	logger          *slog.Logger
	in              *bufio.Scanner
	out             io.Writer
}

// New is the constructor for Console bound to stdin/stdout.
func New(params Params) delivery.Delivery {
	return newConsole(params.Auth, params.RegisterFactory, params.Logger, os.Stdin, os.Stdout)
}

func newConsole(auth usecase.AuthUsecase, registerFactory usecase.CashRegisterFactory, logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		auth:            auth,
		registerFactory: registerFactory,
		logger:          logger,
		in:              bufio.NewScanner(in),
		out:             out,
	}
}

// Serve runs the top-level menu until the user exits or the input stream
// closes.
func (c *Console) Serve(ctx context.Context) error {
	c.println("Welcome to the Final Cash Register System!")

	for {
		c.print("\n1-Sign Up | 2-Login | 3-Exit\nEnter choice: ")

		choice, err := c.readLine()
		if err != nil {
			return c.inputDone(err)
		}

		switch choice {
		case "1":
			if err := c.signUp(ctx); err != nil {
				return c.inputDone(err)
			}
		case "2":
			if err := c.login(ctx); err != nil {
				return c.inputDone(err)
			}
		case "3":
			c.println("Goodbye!")

			return nil
		default:
			c.println("Invalid. Choose 1-3.")
		}
	}
}

// signUp re-prompts each field until it validates; it never aborts a
// signup over bad input.
func (c *Console) signUp(ctx context.Context) error {
	var username string
	for {
		c.print("Enter username (5-15 characters): ")

		line, err := c.readLine()
		if err != nil {
			return err
		}

		username = strings.TrimSpace(line)
		if err := c.auth.ValidateUsername(ctx, username); err != nil {
			c.reportError(err)

			continue
		}

		break
	}

	for {
		c.print("Enter password (8-20 characters, 1 uppercase, 1 number): ")

		password, err := c.readLine()
		if err != nil {
			return err
		}

		if _, err := c.auth.SignUp(ctx, &usecase.SignUpInput{Username: username, Password: password}); err != nil {
			c.reportError(err)

			continue
		}

		c.println("Signup successful!")

		return nil
	}
}

// login reads one credential pair; a failure returns to the top menu.
func (c *Console) login(ctx context.Context) error {
	c.print("Enter username: ")
	username, err := c.readLine()
	if err != nil {
		return err
	}

	c.print("Enter password: ")
	password, err := c.readLine()
	if err != nil {
		return err
	}

	out, loginErr := c.auth.Login(ctx, &usecase.LoginInput{Username: username, Password: password})
	if loginErr != nil {
		c.reportError(loginErr)

		return nil
	}

	c.printf("Login successful! Welcome, %s!\n", out.Username)

	return c.session(ctx, c.registerFactory(out.Username))
}

// inputDone turns a closed input stream into a clean stop; anything else
// is a real failure.
func (c *Console) inputDone(err error) error {
	if errors.Is(err, io.EOF) {
		c.logger.Info("Console input closed")

		return nil
	}

	return errors.Wrap(err, "console input failed")
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return c.in.Text(), nil
}

// reportError prints the user-facing message of a domain error, or a
// generic line for anything unexpected.
func (c *Console) reportError(err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.println(appErr.Message())

		return
	}

	c.logger.Error("Unexpected error", slog.Any("error", err))
	c.println("Error. Please try again.")
}

func (c *Console) print(message string) {
	fmt.Fprint(c.out, message)
}

func (c *Console) println(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
