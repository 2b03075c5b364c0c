package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/adminkit/internal/pkg/security"
)

func TestGenerateRandomBytesURLEncoded(t *testing.T) {
	t.Parallel()

	const length = 32
	seen := make(map[string]bool)
	for range 10 {
		token, err := security.GenerateRandomBytesURLEncoded(length)
		if err != nil {
			t.Fatal(err)
		}
		if token == "" {
			t.Fatal("token is empty")
		}
		if seen[token] {
			t.Fatalf("token %q was generated twice", token)
		}
		seen[token] = true
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"Valid bearer token", "Bearer abc123", "abc123", false},
		{"Missing header", "", "", true},
		{"Missing prefix", "abc123", "", true},
		{"Wrong scheme", "Basic abc123", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			got, err := security.ExtractBearerToken(req)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ExtractBearerToken(%q) = %q, want error", tc.header, got)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if got != tc.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want: %q", tc.header, got, tc.want)
			}
		})
	}
}
