package user

import (
	"context"
	"time"
)

// UserService is the account management contract consumed by the auth
// module and the user handlers.
type UserService interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUser(ctx context.Context, userID string) (User, error)
	FindUserByEmail(ctx context.Context, email string) (User, error)
	FindUserByVerificationToken(ctx context.Context, token string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	TouchLastLogin(ctx context.Context, userID string) (time.Time, error)
	MarkUserVerified(ctx context.Context, userID string) error
	BlockUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error)
	UnblockUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error)
	DeleteUsers(ctx context.Context, callerID string, ids []string) (BulkResult, error)
	DeleteUnverifiedUsers(ctx context.Context, callerID string) (BulkResult, error)
}
