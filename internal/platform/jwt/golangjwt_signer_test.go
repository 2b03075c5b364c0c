package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/adminkit/internal/config"
	"github.com/ferdiebergado/adminkit/internal/platform/jwt"
)

const testKey = "test-signing-key-that-is-long-enough"

func newTestSigner() jwt.Signer {
	cfg := &config.JWT{
		Issuer:    "adminkit",
		Audience:  "adminkit",
		JTILength: 16,
	}
	return jwt.NewGolangJWTSigner(cfg, testKey)
}

func TestGolangJWTSigner_SignVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	claims := jwt.Claims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Name:   "Alice",
	}

	token, err := signer.Sign(claims, []string{"adminkit"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	got, err := signer.Verify(token)
	if err != nil {
		t.Fatal(err)
	}

	if got.UserID != claims.UserID {
		t.Errorf("got.UserID = %q, want: %q", got.UserID, claims.UserID)
	}

	if got.Email != claims.Email {
		t.Errorf("got.Email = %q, want: %q", got.Email, claims.Email)
	}

	if got.Name != claims.Name {
		t.Errorf("got.Name = %q, want: %q", got.Name, claims.Name)
	}
}

func TestGolangJWTSigner_VerifyExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	token, err := signer.Sign(jwt.Claims{UserID: "user-1"}, []string{"adminkit"}, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Error("Verify() = nil, want error for expired token")
	}
}

func TestGolangJWTSigner_VerifyTampered(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	token, err := signer.Sign(jwt.Claims{UserID: "user-1"}, []string{"adminkit"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	other := jwt.NewGolangJWTSigner(&config.JWT{Issuer: "adminkit", JTILength: 16}, "a-different-signing-key-entirely")
	if _, err := other.Verify(token); err == nil {
		t.Error("Verify() = nil, want error for wrong key")
	}
}
