package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/ferdiebergado/adminkit/internal/pkg/message"
	"github.com/ferdiebergado/adminkit/internal/pkg/security"
	"github.com/ferdiebergado/adminkit/internal/pkg/web"
	"github.com/ferdiebergado/adminkit/internal/platform/jwt"
	"github.com/ferdiebergado/adminkit/internal/user"
)

// UserFinder is the store lookup the access gate needs.
type UserFinder interface {
	FindUser(ctx context.Context, userID string) (user.User, error)
}

// RequireUser is the access gate. It verifies the bearer token, then
// re-reads the account from the store on every request so a block or a
// deletion takes effect on the very next call, without revoking tokens.
func RequireUser(signer jwt.Signer, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, err, message.InvalidSession, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidSession, nil)
				return
			}

			u, err := users.FindUser(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, user.ErrNotFound) {
					// The token outlived its account.
					web.RespondUnauthorized(w, err, message.UserNotFound, nil)
					return
				}
				web.RespondInternalServerError(w, err)
				return
			}

			if u.Status == user.StatusBlocked {
				web.RespondForbidden(w, ErrUserBlocked, message.UserBlocked, nil)
				return
			}

			ctx := user.ContextWithUser(r.Context(), u.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
