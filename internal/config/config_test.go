package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/adminkit/internal/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	const contents = `{
  "server": {"port": 8888, "read_timeout": "10s", "max_body_bytes": 1048576},
  "jwt": {"issuer": "adminkit", "audience": "adminkit", "ttl": "168h", "jti_length": 16},
  "auth": {"verify_token_length": 32}
}`

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		t.Fatal(err)
	}

	if gotPort, wantPort := cfg.Server.Port, 8888; gotPort != wantPort {
		t.Errorf("cfg.Server.Port = %d, want: %d", gotPort, wantPort)
	}

	if gotTTL, wantTTL := cfg.JWT.TTL.Duration, 168*time.Hour; gotTTL != wantTTL {
		t.Errorf("cfg.JWT.TTL = %v, want: %v", gotTTL, wantTTL)
	}

	if gotLen, wantLen := cfg.Auth.VerifyTokenLength, uint32(32); gotLen != wantLen {
		t.Errorf("cfg.Auth.VerifyTokenLength = %d, want: %d", gotLen, wantLen)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("config.Load() = nil, want error")
	}
}

func TestSecrets_SigningKeyOrFallback(t *testing.T) {
	s := &config.Secrets{}
	if got := s.SigningKeyOrFallback(); got == "" {
		t.Error("SigningKeyOrFallback() is empty, want fallback key")
	}

	s.SigningKey = "real-key"
	if got, want := s.SigningKeyOrFallback(), "real-key"; got != want {
		t.Errorf("SigningKeyOrFallback() = %q, want: %q", got, want)
	}
}
