package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ferdiebergado/adminkit/internal/config"
	"github.com/ferdiebergado/adminkit/internal/pkg/message"
	"github.com/ferdiebergado/adminkit/internal/pkg/security"
	"github.com/ferdiebergado/adminkit/internal/platform/email"
	"github.com/ferdiebergado/adminkit/internal/platform/hash"
	"github.com/ferdiebergado/adminkit/internal/platform/jwt"
	"github.com/ferdiebergado/adminkit/internal/user"
	"github.com/google/uuid"
)

var _ AuthService = (*Service)(nil)

var (
	ErrMissingFields      = errors.New("auth service: missing required fields")
	ErrInvalidCredentials = errors.New("auth service: invalid email or password")
	ErrUserBlocked        = errors.New("auth service: user is blocked")
)

const verifyTokenPrefix = "verify_"

type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
	Mailer email.Mailer
}

type Service struct {
	userSvc     user.UserService
	hasher      hash.Hasher
	signer      jwt.Signer
	mailer      email.Mailer
	cfg         *config.Config
	frontendURL string
}

func NewService(userSvc user.UserService, providers *Providers, cfg *config.Config, frontendURL string) *Service {
	return &Service{
		userSvc:     userSvc,
		hasher:      providers.Hasher,
		signer:      providers.Signer,
		mailer:      providers.Mailer,
		cfg:         cfg,
		frontendURL: frontendURL,
	}
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

func (p *RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", "*"),
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

type LoginParams struct {
	Email    string
	Password string
}

func (p *LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

// Register creates an unverified account and returns a usable session token
// for it. Duplicate emails surface as user.ErrDuplicateEmail straight from
// the store's unique index; there is no pre-check, so concurrent identical
// registrations resolve to one success and one conflict.
func (s *Service) Register(ctx context.Context, params RegisterParams) (string, user.User, error) {
	name := strings.TrimSpace(params.Name)
	emailAddr := normalizeEmail(params.Email)
	if name == "" || emailAddr == "" || strings.TrimSpace(params.Password) == "" {
		return "", user.User{}, ErrMissingFields
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return "", user.User{}, fmt.Errorf("hash password: %w", err)
	}

	verifyToken, err := s.newVerificationToken()
	if err != nil {
		return "", user.User{}, fmt.Errorf("generate verification token: %w", err)
	}

	newUser, err := s.userSvc.CreateUser(ctx, user.CreateUserParams{
		ID:                uuid.NewString(),
		Name:              name,
		Email:             emailAddr,
		PasswordHash:      passwordHash,
		VerificationToken: verifyToken,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return "", user.User{}, err
		}
		return "", user.User{}, fmt.Errorf("create user: %w", err)
	}

	// Best-effort; registration never fails on delivery problems.
	go s.sendVerificationEmail(newUser.Email, verifyToken)

	token, err := s.signToken(newUser)
	if err != nil {
		return "", user.User{}, err
	}

	return token, newUser, nil
}

// Login authenticates an account. The blocked check runs only after the
// password verifies so a wrong password never leaks account status.
func (s *Service) Login(ctx context.Context, params LoginParams) (string, user.User, error) {
	u, err := s.userSvc.FindUserByEmail(ctx, normalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", user.User{}, ErrInvalidCredentials
		}
		return "", user.User{}, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return "", user.User{}, fmt.Errorf("verify password: %w", err)
	}

	if !ok {
		return "", user.User{}, ErrInvalidCredentials
	}

	if u.Status == user.StatusBlocked {
		return "", user.User{}, ErrUserBlocked
	}

	lastLogin, err := s.userSvc.TouchLastLogin(ctx, u.ID)
	if err != nil {
		return "", user.User{}, fmt.Errorf("update last login: %w", err)
	}
	u.LastLogin = &lastLogin

	token, err := s.signToken(u)
	if err != nil {
		return "", user.User{}, err
	}

	return token, u, nil
}

// VerifyEmail consumes a verification token. The token is single-use: once
// an account turns active the token is cleared and a repeat request finds
// nothing. A blocked account stays blocked and keeps its stale token.
func (s *Service) VerifyEmail(ctx context.Context, token string) (string, error) {
	u, err := s.userSvc.FindUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("find user by verification token: %w", err)
	}

	switch u.Status {
	case user.StatusActive:
		return message.AlreadyVerified, nil
	case user.StatusBlocked:
		return message.UserBlocked, nil
	case user.StatusUnverified:
		if err := s.userSvc.MarkUserVerified(ctx, u.ID); err != nil {
			return "", fmt.Errorf("mark user verified: %w", err)
		}
		return message.VerifySuccess, nil
	default:
		return "", fmt.Errorf("unknown account status: %q", u.Status)
	}
}

func (s *Service) signToken(u user.User) (string, error) {
	claims := jwt.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}

	token, err := s.signer.Sign(claims, []string{s.cfg.JWT.Audience}, s.cfg.JWT.TTL.Duration)
	if err != nil {
		return "", fmt.Errorf("sign session token for user %q: %w", u.ID, err)
	}
	return token, nil
}

func (s *Service) newVerificationToken() (string, error) {
	random, err := security.GenerateRandomBytesURLEncoded(s.cfg.Auth.VerifyTokenLength)
	if err != nil {
		return "", err
	}
	return verifyTokenPrefix + random, nil
}

func (s *Service) sendVerificationEmail(to, token string) {
	link := s.frontendURL + "/verify/" + token
	body := "Please verify your email by clicking this link: " + link

	if err := s.mailer.SendPlain([]string{to}, s.cfg.Email.Subject, body); err != nil {
		slog.Error("failed to send verification email", "reason", err)
		return
	}

	slog.Info("Verification email sent.")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
