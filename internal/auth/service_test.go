package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/adminkit/internal/auth"
	"github.com/ferdiebergado/adminkit/internal/config"
	"github.com/ferdiebergado/adminkit/internal/pkg/message"
	"github.com/ferdiebergado/adminkit/internal/pkg/timex"
	"github.com/ferdiebergado/adminkit/internal/platform/email"
	"github.com/ferdiebergado/adminkit/internal/platform/hash"
	"github.com/ferdiebergado/adminkit/internal/platform/jwt"
	"github.com/ferdiebergado/adminkit/internal/user"
)

const (
	testEmail = "test@example.com"
	testPass  = "hunter22"
	testName  = "Test User"
	testToken = "signed-token"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWT{
			Issuer:    "adminkit",
			Audience:  "adminkit",
			TTL:       timex.Duration{Duration: time.Hour},
			JTILength: 8,
		},
		Auth:  &config.Auth{VerifyTokenLength: 8},
		Email: &config.Email{Subject: "Verify your email"},
	}
}

func testProviders() *auth.Providers {
	return &auth.Providers{
		Hasher: &hash.StubHasher{
			HashFunc: func(plain string) (string, error) {
				return "hashed:" + plain, nil
			},
			VerifyFunc: func(plain, hashed string) (bool, error) {
				return "hashed:"+plain == hashed, nil
			},
		},
		Signer: &jwt.StubSigner{
			SignFunc: func(_ jwt.Claims, _ []string, _ time.Duration) (string, error) {
				return testToken, nil
			},
		},
		Mailer: &email.StubMailer{
			SendPlainFunc: func(_ []string, _, _ string) error {
				return nil
			},
		},
	}
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		params     auth.RegisterParams
		createFunc func(ctx context.Context, params user.CreateUserParams) (user.User, error)
		wantErr    error
	}{
		{"Successful registration",
			auth.RegisterParams{Name: testName, Email: testEmail, Password: testPass},
			func(_ context.Context, params user.CreateUserParams) (user.User, error) {
				return user.User{
					ID:                params.ID,
					Name:              params.Name,
					Email:             params.Email,
					PasswordHash:      params.PasswordHash,
					Status:            user.StatusUnverified,
					VerificationToken: &params.VerificationToken,
					CreatedAt:         time.Now(),
				}, nil
			},
			nil,
		},
		{"Missing name",
			auth.RegisterParams{Email: testEmail, Password: testPass},
			nil,
			auth.ErrMissingFields,
		},
		{"Blank password",
			auth.RegisterParams{Name: testName, Email: testEmail, Password: "   "},
			nil,
			auth.ErrMissingFields,
		},
		{"Duplicate email",
			auth.RegisterParams{Name: testName, Email: testEmail, Password: testPass},
			func(_ context.Context, _ user.CreateUserParams) (user.User, error) {
				return user.User{}, user.ErrDuplicateEmail
			},
			user.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var created *user.CreateUserParams
			userSvc := &user.StubService{
				CreateUserFunc: func(ctx context.Context, params user.CreateUserParams) (user.User, error) {
					created = &params
					return tt.createFunc(ctx, params)
				},
			}

			svc := auth.NewService(userSvc, testProviders(), testConfig(), "http://localhost:5173")
			token, newUser, err := svc.Register(context.Background(), tt.params)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("svc.Register() error = %v, want: %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("svc.Register() error = %v", err)
			}

			if token != testToken {
				t.Errorf("token = %q, want: %q", token, testToken)
			}

			if newUser.Status != user.StatusUnverified {
				t.Errorf("newUser.Status = %q, want: %q", newUser.Status, user.StatusUnverified)
			}

			if created == nil {
				t.Fatal("CreateUser was not called")
			}

			if created.ID == "" {
				t.Error("created.ID is empty")
			}

			if created.PasswordHash != "hashed:"+testPass {
				t.Errorf("created.PasswordHash = %q, want: %q", created.PasswordHash, "hashed:"+testPass)
			}

			if !strings.HasPrefix(created.VerificationToken, "verify_") {
				t.Errorf("created.VerificationToken = %q, want prefix %q", created.VerificationToken, "verify_")
			}
		})
	}
}

func TestService_RegisterNormalizesEmail(t *testing.T) {
	t.Parallel()

	userSvc := &user.StubService{
		CreateUserFunc: func(_ context.Context, params user.CreateUserParams) (user.User, error) {
			if params.Email != testEmail {
				t.Errorf("params.Email = %q, want: %q", params.Email, testEmail)
			}
			return user.User{ID: params.ID, Email: params.Email, Status: user.StatusUnverified}, nil
		},
	}

	svc := auth.NewService(userSvc, testProviders(), testConfig(), "http://localhost:5173")
	_, _, err := svc.Register(context.Background(), auth.RegisterParams{
		Name:     testName,
		Email:    "  Test@Example.COM ",
		Password: testPass,
	})
	if err != nil {
		t.Fatalf("svc.Register() error = %v", err)
	}
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	storedHash := "hashed:" + testPass

	tests := []struct {
		name     string
		password string
		findFunc func(ctx context.Context, email string) (user.User, error)
		wantErr  error
	}{
		{"Successful login",
			testPass,
			func(_ context.Context, email string) (user.User, error) {
				return user.User{ID: "1", Email: email, PasswordHash: storedHash, Status: user.StatusActive}, nil
			},
			nil,
		},
		{"Unverified accounts can log in",
			testPass,
			func(_ context.Context, email string) (user.User, error) {
				return user.User{ID: "1", Email: email, PasswordHash: storedHash, Status: user.StatusUnverified}, nil
			},
			nil,
		},
		{"Unknown email",
			testPass,
			func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
			auth.ErrInvalidCredentials,
		},
		{"Wrong password",
			"not-the-password",
			func(_ context.Context, email string) (user.User, error) {
				return user.User{ID: "1", Email: email, PasswordHash: storedHash, Status: user.StatusActive}, nil
			},
			auth.ErrInvalidCredentials,
		},
		{"Blocked account",
			testPass,
			func(_ context.Context, email string) (user.User, error) {
				return user.User{ID: "1", Email: email, PasswordHash: storedHash, Status: user.StatusBlocked}, nil
			},
			auth.ErrUserBlocked,
		},
		{"Blocked account with wrong password stays a credentials error",
			"not-the-password",
			func(_ context.Context, email string) (user.User, error) {
				return user.User{ID: "1", Email: email, PasswordHash: storedHash, Status: user.StatusBlocked}, nil
			},
			auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			now := time.Now().Truncate(0)
			userSvc := &user.StubService{
				FindUserByEmailFunc: tt.findFunc,
				TouchLastLoginFunc: func(_ context.Context, _ string) (time.Time, error) {
					return now, nil
				},
			}

			svc := auth.NewService(userSvc, testProviders(), testConfig(), "http://localhost:5173")
			token, u, err := svc.Login(context.Background(), auth.LoginParams{Email: testEmail, Password: tt.password})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("svc.Login() error = %v, want: %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("svc.Login() error = %v", err)
			}

			if token != testToken {
				t.Errorf("token = %q, want: %q", token, testToken)
			}

			if u.LastLogin == nil || !u.LastLogin.Equal(now) {
				t.Errorf("u.LastLogin = %v, want: %v", u.LastLogin, now)
			}
		})
	}
}

func TestService_VerifyEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     user.Status
		wantMsg    string
		wantMarked bool
	}{
		{"Unverified account turns active", user.StatusUnverified, message.VerifySuccess, true},
		{"Already verified", user.StatusActive, message.AlreadyVerified, false},
		{"Blocked account stays blocked", user.StatusBlocked, message.UserBlocked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			marked := false
			userSvc := &user.StubService{
				FindUserByVerificationTokenFunc: func(_ context.Context, token string) (user.User, error) {
					return user.User{ID: "1", Status: tt.status, VerificationToken: &token}, nil
				},
				MarkUserVerifiedFunc: func(_ context.Context, _ string) error {
					marked = true
					return nil
				},
			}

			svc := auth.NewService(userSvc, testProviders(), testConfig(), "http://localhost:5173")
			msg, err := svc.VerifyEmail(context.Background(), "verify_abc")
			if err != nil {
				t.Fatalf("svc.VerifyEmail() error = %v", err)
			}

			if msg != tt.wantMsg {
				t.Errorf("msg = %q, want: %q", msg, tt.wantMsg)
			}

			if marked != tt.wantMarked {
				t.Errorf("MarkUserVerified called = %v, want: %v", marked, tt.wantMarked)
			}
		})
	}
}

func TestService_VerifyEmailUnknownToken(t *testing.T) {
	t.Parallel()

	userSvc := &user.StubService{
		FindUserByVerificationTokenFunc: func(_ context.Context, _ string) (user.User, error) {
			return user.User{}, user.ErrNotFound
		},
	}

	svc := auth.NewService(userSvc, testProviders(), testConfig(), "http://localhost:5173")
	_, err := svc.VerifyEmail(context.Background(), "verify_consumed")
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("svc.VerifyEmail() error = %v, want: %v", err, user.ErrNotFound)
	}
}
