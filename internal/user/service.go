package user

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

var _ UserService = (*Service)(nil)

// ErrNoTargets is returned by bulk operations when no target ids were given.
var ErrNoTargets = errors.New("user service: no users selected")

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUser(ctx context.Context, userID string) (User, error)
	FindUserByEmail(ctx context.Context, email string) (User, error)
	FindUserByVerificationToken(ctx context.Context, token string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	TouchLastLogin(ctx context.Context, userID string) (time.Time, error)
	MarkUserVerified(ctx context.Context, userID string) error
	UpdateStatus(ctx context.Context, ids []string, status Status) (int64, error)
	DeleteUsers(ctx context.Context, ids []string) (int64, error)
	DeleteUsersByStatus(ctx context.Context, status Status) ([]string, error)
}

// BulkResult reports the outcome of a bulk operation. Self indicates the
// caller's own account was among the targets; the consuming layer is
// expected to tear down its session on that signal.
type BulkResult struct {
	Count int64
	Self  bool
}

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	u, err := s.repo.CreateUser(ctx, params)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return User{}, err
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) FindUser(ctx context.Context, userID string) (User, error) {
	return s.repo.FindUser(ctx, userID)
}

func (s *Service) FindUserByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.FindUserByEmail(ctx, email)
}

func (s *Service) FindUserByVerificationToken(ctx context.Context, token string) (User, error) {
	return s.repo.FindUserByVerificationToken(ctx, token)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) TouchLastLogin(ctx context.Context, userID string) (time.Time, error) {
	return s.repo.TouchLastLogin(ctx, userID)
}

func (s *Service) MarkUserVerified(ctx context.Context, userID string) error {
	return s.repo.MarkUserVerified(ctx, userID)
}

// BlockUsers sets status=blocked on every matching account. Blocking is
// independent of verification: an unverified account can be blocked.
func (s *Service) BlockUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{}, ErrNoTargets
	}

	count, err := s.repo.UpdateStatus(ctx, ids, StatusBlocked)
	if err != nil {
		return BulkResult{}, fmt.Errorf("block users: %w", err)
	}

	return BulkResult{Count: count, Self: slices.Contains(ids, callerID)}, nil
}

// UnblockUsers sets status=active unconditionally, even for accounts that
// never verified their email. Unblocking restores access outright; this is
// a product decision, not an oversight.
func (s *Service) UnblockUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{}, ErrNoTargets
	}

	count, err := s.repo.UpdateStatus(ctx, ids, StatusActive)
	if err != nil {
		return BulkResult{}, fmt.Errorf("unblock users: %w", err)
	}

	return BulkResult{Count: count, Self: slices.Contains(ids, callerID)}, nil
}

// DeleteUsers removes matching accounts permanently. Deletion is final.
func (s *Service) DeleteUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{}, ErrNoTargets
	}

	count, err := s.repo.DeleteUsers(ctx, ids)
	if err != nil {
		return BulkResult{}, fmt.Errorf("delete users: %w", err)
	}

	return BulkResult{Count: count, Self: slices.Contains(ids, callerID)}, nil
}

// DeleteUnverifiedUsers removes every unverified account, the caller's own
// included if it never verified.
func (s *Service) DeleteUnverifiedUsers(ctx context.Context, callerID string) (BulkResult, error) {
	deleted, err := s.repo.DeleteUsersByStatus(ctx, StatusUnverified)
	if err != nil {
		return BulkResult{}, fmt.Errorf("delete unverified users: %w", err)
	}

	return BulkResult{Count: int64(len(deleted)), Self: slices.Contains(deleted, callerID)}, nil
}
