package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// fallbackSigningKey is used when KEY is unset. It is not suitable for
// production; Secrets.SigningKeyOrFallback logs a warning when it is used.
const fallbackSigningKey = "SuperSecretKeyThatIsAtLeast32Characters!"

// Secrets holds everything sourced from the environment rather than the
// config file: deployment mode, credentials, and endpoints.
type Secrets struct {
	AppEnv      string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	SigningKey  string `env:"KEY"`
	Pepper      string `env:"PEPPER"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	DBHost    string `env:"DB_HOST" envDefault:"localhost"`
	DBPort    string `env:"DB_PORT" envDefault:"5432"`
	DBUser    string `env:"DB_USER"`
	DBPass    string `env:"DB_PASS"`
	DBName    string `env:"DB_NAME"`
	DBSSLMode string `env:"DB_SSLMODE" envDefault:"disable"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
}

func (s *Secrets) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", s.AppEnv),
		slog.String("log_level", s.LogLevel),
		slog.String("frontend_url", s.FrontendURL),
		slog.String("db_host", s.DBHost),
		slog.String("smtp_host", s.SMTPHost),
	)
}

// SigningKeyOrFallback returns the configured signing key, or the development
// fallback when none is set.
func (s *Secrets) SigningKeyOrFallback() string {
	if s.SigningKey == "" {
		slog.Warn("KEY is not set, using the development fallback signing key")
		return fallbackSigningKey
	}
	return s.SigningKey
}

// SMTPConfigured reports whether enough SMTP settings are present to send mail.
func (s *Secrets) SMTPConfigured() bool {
	return s.SMTPUser != "" && s.SMTPPass != ""
}

// LoadSecrets parses the environment into a Secrets struct.
func LoadSecrets() (*Secrets, error) {
	var s Secrets
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &s, nil
}
