package main

import (
	"context"
	"log/slog"
	"os"

	"cashreg/config"
	"cashreg/internal/delivery"
	"cashreg/internal/delivery/console"
	"cashreg/internal/domain/service"
	"cashreg/internal/infra/auth"
	logs "cashreg/internal/infra/log"
	"cashreg/internal/infra/persistence/memory"
	"cashreg/internal/infra/receipt"
	"cashreg/internal/usecase/impl"

	"go.uber.org/fx"
)

type startConsoleParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startConsole,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		memory.NewCredentialRepository,
		receipt.NewFileLog,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordVerifier,
		),
	)
}

// newPasswordVerifier selects the credential encoding from config.
// Plaintext is the default; bcrypt is opt-in.
func newPasswordVerifier(cfg *config.Config) service.PasswordVerifier {
	if cfg.Auth != nil && cfg.Auth.HashPasswords {
		return auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	}

	return auth.NewPlainVerifier()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCashRegisterFactory,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				console.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startConsole(ctx context.Context, params startConsoleParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Console stopped", slog.Any("error", err))
				os.Exit(1)
			}

			if err := params.Shutdowner.Shutdown(); err != nil {
				slog.Error("Failed to shut down", slog.Any("error", err))
			}
		}()
	}
}
