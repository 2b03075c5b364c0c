package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/adminkit/internal/auth"
	"github.com/ferdiebergado/adminkit/internal/platform/jwt"
	"github.com/ferdiebergado/adminkit/internal/user"
)

type stubUserFinder struct {
	findFunc func(ctx context.Context, userID string) (user.User, error)
}

func (s *stubUserFinder) FindUser(ctx context.Context, userID string) (user.User, error) {
	return s.findFunc(ctx, userID)
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	const userID = "1"

	okVerify := func(_ string) (*jwt.Claims, error) {
		return &jwt.Claims{UserID: userID, Email: testEmail}, nil
	}
	activeUser := func(_ context.Context, id string) (user.User, error) {
		return user.User{ID: id, Email: testEmail, Status: user.StatusActive}, nil
	}

	tests := []struct {
		name       string
		authHeader string
		verifyFunc func(tokenString string) (*jwt.Claims, error)
		findFunc   func(ctx context.Context, userID string) (user.User, error)
		code       int
		wantNext   bool
	}{
		{"Valid token and active account",
			"Bearer " + testToken, okVerify, activeUser, http.StatusOK, true},
		{"Unverified accounts pass the gate",
			"Bearer " + testToken, okVerify,
			func(_ context.Context, id string) (user.User, error) {
				return user.User{ID: id, Status: user.StatusUnverified}, nil
			},
			http.StatusOK, true},
		{"Missing authorization header",
			"", nil, nil, http.StatusUnauthorized, false},
		{"Malformed authorization header",
			"Basic abc", nil, nil, http.StatusUnauthorized, false},
		{"Invalid token",
			"Bearer bad",
			func(_ string) (*jwt.Claims, error) {
				return nil, errors.New("token is expired")
			},
			nil, http.StatusUnauthorized, false},
		{"Token for a deleted account",
			"Bearer " + testToken, okVerify,
			func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
			http.StatusUnauthorized, false},
		{"Blocked account",
			"Bearer " + testToken, okVerify,
			func(_ context.Context, id string) (user.User, error) {
				return user.User{ID: id, Status: user.StatusBlocked}, nil
			},
			http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			signer := &jwt.StubSigner{VerifyFunc: tt.verifyFunc}
			finder := &stubUserFinder{findFunc: tt.findFunc}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				gotID, err := user.FromContext(r.Context())
				if err != nil {
					t.Errorf("user.FromContext() error = %v", err)
				}
				if gotID != userID {
					t.Errorf("user.FromContext() = %q, want: %q", gotID, userID)
				}

				w.WriteHeader(http.StatusOK)
			})

			gate := auth.RequireUser(signer, finder)

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			gate(next).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}

			if nextCalled != tt.wantNext {
				t.Errorf("next called = %v, want: %v", nextCalled, tt.wantNext)
			}
		})
	}
}
