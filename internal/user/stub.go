package user

import (
	"context"
	"errors"
	"time"
)

var _ UserService = (*StubService)(nil)

// StubService is a hand-written test double for UserService.
type StubService struct {
	CreateUserFunc                  func(ctx context.Context, params CreateUserParams) (User, error)
	FindUserFunc                    func(ctx context.Context, userID string) (User, error)
	FindUserByEmailFunc             func(ctx context.Context, email string) (User, error)
	FindUserByVerificationTokenFunc func(ctx context.Context, token string) (User, error)
	ListUsersFunc                   func(ctx context.Context) ([]User, error)
	TouchLastLoginFunc              func(ctx context.Context, userID string) (time.Time, error)
	MarkUserVerifiedFunc            func(ctx context.Context, userID string) error
	BlockUsersFunc                  func(ctx context.Context, callerID string, ids []string) (BulkResult, error)
	UnblockUsersFunc                func(ctx context.Context, callerID string, ids []string) (BulkResult, error)
	DeleteUsersFunc                 func(ctx context.Context, callerID string, ids []string) (BulkResult, error)
	DeleteUnverifiedUsersFunc       func(ctx context.Context, callerID string) (BulkResult, error)
}

func (s *StubService) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	if s.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUser(ctx context.Context, userID string) (User, error) {
	if s.FindUserFunc == nil {
		return User{}, errors.New("FindUser not implemented by stub")
	}
	return s.FindUserFunc(ctx, userID)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (User, error) {
	if s.FindUserByEmailFunc == nil {
		return User{}, errors.New("FindUserByEmail not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) FindUserByVerificationToken(ctx context.Context, token string) (User, error) {
	if s.FindUserByVerificationTokenFunc == nil {
		return User{}, errors.New("FindUserByVerificationToken not implemented by stub")
	}
	return s.FindUserByVerificationTokenFunc(ctx, token)
}

func (s *StubService) ListUsers(ctx context.Context) ([]User, error) {
	if s.ListUsersFunc == nil {
		return nil, errors.New("ListUsers not implemented by stub")
	}
	return s.ListUsersFunc(ctx)
}

func (s *StubService) TouchLastLogin(ctx context.Context, userID string) (time.Time, error) {
	if s.TouchLastLoginFunc == nil {
		return time.Time{}, errors.New("TouchLastLogin not implemented by stub")
	}
	return s.TouchLastLoginFunc(ctx, userID)
}

func (s *StubService) MarkUserVerified(ctx context.Context, userID string) error {
	if s.MarkUserVerifiedFunc == nil {
		return errors.New("MarkUserVerified not implemented by stub")
	}
	return s.MarkUserVerifiedFunc(ctx, userID)
}

func (s *StubService) BlockUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error) {
	if s.BlockUsersFunc == nil {
		return BulkResult{}, errors.New("BlockUsers not implemented by stub")
	}
	return s.BlockUsersFunc(ctx, callerID, ids)
}

func (s *StubService) UnblockUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error) {
	if s.UnblockUsersFunc == nil {
		return BulkResult{}, errors.New("UnblockUsers not implemented by stub")
	}
	return s.UnblockUsersFunc(ctx, callerID, ids)
}

func (s *StubService) DeleteUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error) {
	if s.DeleteUsersFunc == nil {
		return BulkResult{}, errors.New("DeleteUsers not implemented by stub")
	}
	return s.DeleteUsersFunc(ctx, callerID, ids)
}

func (s *StubService) DeleteUnverifiedUsers(ctx context.Context, callerID string) (BulkResult, error) {
	if s.DeleteUnverifiedUsersFunc == nil {
		return BulkResult{}, errors.New("DeleteUnverifiedUsers not implemented by stub")
	}
	return s.DeleteUnverifiedUsersFunc(ctx, callerID)
}
