package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/adminkit/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ UserRepository = (*Repository)(nil)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already exists")
	ErrQueryFailed    = errors.New("user repository: query failed")
)

// pgUniqueViolation is the SQLSTATE Postgres reports when the unique index
// on email rejects an insert. Duplicate detection relies on this rather
// than a read-then-write check, so concurrent registrations with the same
// email resolve to exactly one success.
const pgUniqueViolation = "23505"

type Repository struct {
	db db.Executor
}

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}

type CreateUserParams struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	VerificationToken string
}

const QueryUserCreate = `
INSERT INTO users (id, name, email, password_hash, status, verification_token)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at
`

func (r *Repository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	u := User{
		ID:                params.ID,
		Name:              params.Name,
		Email:             params.Email,
		PasswordHash:      params.PasswordHash,
		Status:            StatusUnverified,
		VerificationToken: &params.VerificationToken,
	}

	row := r.db.QueryRowContext(ctx, QueryUserCreate,
		params.ID, params.Name, params.Email, params.PasswordHash, StatusUnverified, params.VerificationToken)
	if err := row.Scan(&u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("%w: create user: %v", ErrQueryFailed, err)
	}

	return u, nil
}

const QueryUserFindByEmail = `
SELECT id, name, email, password_hash, status, verification_token, last_login, created_at FROM users
WHERE email = $1
LIMIT 1
`

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFindByEmail, email)
	return scanUser(row, "email")
}

const QueryUserFind = `
SELECT id, name, email, password_hash, status, verification_token, last_login, created_at FROM users
WHERE id = $1
LIMIT 1
`

func (r *Repository) FindUser(ctx context.Context, userID string) (User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFind, userID)
	return scanUser(row, "id")
}

const QueryUserFindByVerificationToken = `
SELECT id, name, email, password_hash, status, verification_token, last_login, created_at FROM users
WHERE verification_token = $1
LIMIT 1
`

func (r *Repository) FindUserByVerificationToken(ctx context.Context, token string) (User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFindByVerificationToken, token)
	return scanUser(row, "verification_token")
}

func scanUser(row *sql.Row, by string) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Status, &u.VerificationToken, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("%w: find user by %s: %v", ErrQueryFailed, by, err)
	}
	return u, nil
}

const QueryUserList = `
SELECT id, name, email, status, last_login, created_at FROM users
ORDER BY last_login DESC NULLS LAST, created_at DESC
`

func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, QueryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Status, &u.LastLogin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}

const QueryUserTouchLastLogin = `
UPDATE users SET last_login = now() WHERE id = $1
RETURNING last_login
`

func (r *Repository) TouchLastLogin(ctx context.Context, userID string) (time.Time, error) {
	var lastLogin time.Time
	row := r.db.QueryRowContext(ctx, QueryUserTouchLastLogin, userID)
	if err := row.Scan(&lastLogin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, fmt.Errorf("%w: touch last login for user %s: %v", ErrQueryFailed, userID, err)
	}
	return lastLogin, nil
}

const QueryUserMarkVerified = `
UPDATE users SET status = $1, verification_token = NULL WHERE id = $2
`

func (r *Repository) MarkUserVerified(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, QueryUserMarkVerified, StatusActive, userID); err != nil {
		return fmt.Errorf("%w: mark user %s verified: %v", ErrQueryFailed, userID, err)
	}
	return nil
}

const QueryUserUpdateStatus = `
UPDATE users SET status = $1 WHERE id = ANY($2)
`

// UpdateStatus sets the status of every matching account. Ids without a
// matching row are ignored; the returned count reflects rows actually updated.
func (r *Repository) UpdateStatus(ctx context.Context, ids []string, status Status) (int64, error) {
	res, err := r.db.ExecContext(ctx, QueryUserUpdateStatus, status, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: update status to %s: %v", ErrQueryFailed, status, err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %v", ErrQueryFailed, err)
	}
	return count, nil
}

const QueryUserDelete = `
DELETE FROM users WHERE id = ANY($1)
`

func (r *Repository) DeleteUsers(ctx context.Context, ids []string) (int64, error) {
	res, err := r.db.ExecContext(ctx, QueryUserDelete, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: delete users: %v", ErrQueryFailed, err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %v", ErrQueryFailed, err)
	}
	return count, nil
}

const QueryUserDeleteByStatus = `
DELETE FROM users WHERE status = $1
RETURNING id
`

// DeleteUsersByStatus removes every account with the given status and
// returns the ids of the deleted rows.
func (r *Repository) DeleteUsersByStatus(ctx context.Context, status Status) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, QueryUserDeleteByStatus, status)
	if err != nil {
		return nil, fmt.Errorf("%w: delete users with status %s: %v", ErrQueryFailed, status, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("user repository: scan deleted id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over deleted ids: %w", err)
	}

	return ids, nil
}
