package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/adminkit/internal/config"
	"github.com/ferdiebergado/adminkit/internal/middleware"
	"github.com/ferdiebergado/adminkit/internal/pkg/logging"
	"github.com/ferdiebergado/adminkit/internal/platform/db"
	"github.com/ferdiebergado/adminkit/internal/platform/email"
	"github.com/ferdiebergado/adminkit/internal/platform/hash"
	"github.com/ferdiebergado/adminkit/internal/platform/jwt"
	"github.com/ferdiebergado/adminkit/internal/platform/router"
	"github.com/ferdiebergado/adminkit/internal/platform/validation"
	"github.com/ferdiebergado/goexpress"
	"github.com/joho/godotenv"
)

const configFile = "config.json"

// Run wires the application together and blocks until the context is
// cancelled or the server fails.
func Run(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on the environment.")
	}

	secrets, err := config.LoadSecrets()
	if err != nil {
		return fmt.Errorf("load secrets: %w", err)
	}

	logging.SetupLogger(secrets.AppEnv, secrets.LogLevel, os.Stdout)
	slog.Info("Starting application...", "env", secrets.AppEnv)

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	conn, err := db.NewConnection(ctx, cfg.DB, secrets)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		slog.Info("Closing database connection...")
		if err := conn.Close(); err != nil {
			slog.Error("failed to close database connection", "reason", err)
		}
	}()

	if err := db.Migrate(ctx, conn); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	var mailer email.Mailer = email.NewLogMailer()
	if secrets.SMTPConfigured() {
		mailer = email.NewSMTPMailer(&email.SMTPConfig{
			Host:     secrets.SMTPHost,
			Port:     secrets.SMTPPort,
			User:     secrets.SMTPUser,
			Password: secrets.SMTPPass,
		}, cfg.Email.Sender)
	}

	providers := &Providers{
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, secrets.SigningKeyOrFallback()),
		Mailer:    mailer,
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, secrets.Pepper),
		Router:    router.NewGoexpressRouter(),
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}

	application := New(cfg, secrets, conn, providers, middlewares)

	go func() {
		<-ctx.Done()
		if err := application.Shutdown(); err != nil {
			slog.Error("failed to shut down gracefully", "reason", err)
		}
	}()

	return application.Start(ctx)
}
