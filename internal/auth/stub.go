package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/adminkit/internal/user"
)

var _ AuthService = (*StubService)(nil)

// StubService is a hand-written test double for AuthService.
type StubService struct {
	RegisterFunc    func(ctx context.Context, params RegisterParams) (string, user.User, error)
	LoginFunc       func(ctx context.Context, params LoginParams) (string, user.User, error)
	VerifyEmailFunc func(ctx context.Context, token string) (string, error)
}

func (s *StubService) Register(ctx context.Context, params RegisterParams) (string, user.User, error) {
	if s.RegisterFunc == nil {
		return "", user.User{}, errors.New("Register not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (string, user.User, error) {
	if s.LoginFunc == nil {
		return "", user.User{}, errors.New("Login not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

func (s *StubService) VerifyEmail(ctx context.Context, token string) (string, error) {
	if s.VerifyEmailFunc == nil {
		return "", errors.New("VerifyEmail not implemented by stub")
	}
	return s.VerifyEmailFunc(ctx, token)
}
