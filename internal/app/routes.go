package app

import (
	"net/http"

	"github.com/ferdiebergado/adminkit/internal/auth"
	"github.com/ferdiebergado/adminkit/internal/middleware"
	"github.com/ferdiebergado/adminkit/internal/platform/router"
	"github.com/ferdiebergado/adminkit/internal/platform/validation"
	"github.com/ferdiebergado/adminkit/internal/user"
)

// mountAuthRoutes registers the public endpoints. Register, login, and
// verify stay reachable by unauthenticated and not-yet-verified callers.
func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/api/auth", func(gr router.Router) {
		gr.Post("/register", handler.Register,
			middleware.DecodePayload[auth.RegisterRequest](maxBodySize),
			middleware.ValidateInput[auth.RegisterRequest](validator))
		gr.Post("/login", handler.Login,
			middleware.DecodePayload[auth.LoginRequest](maxBodySize),
			middleware.ValidateInput[auth.LoginRequest](validator))
		gr.Get("/verify/{token}", handler.VerifyEmail)
	})
}

// mountUserRoutes registers the protected endpoints behind the access gate.
func mountUserRoutes(r router.Router, handler *user.Handler, gate func(http.Handler) http.Handler, maxBodySize int64) {
	r.Group("/api/users", func(gr router.Router) {
		gr.Get("/", handler.ListUsers)
		gr.Get("/me", handler.CurrentUser)
		gr.Post("/block", handler.BlockUsers,
			middleware.DecodePayload[user.UserIDsRequest](maxBodySize))
		gr.Post("/unblock", handler.UnblockUsers,
			middleware.DecodePayload[user.UserIDsRequest](maxBodySize))
		gr.Delete("/", handler.DeleteUsers,
			middleware.DecodePayload[user.UserIDsRequest](maxBodySize))
		gr.Delete("/unverified", handler.DeleteUnverifiedUsers)
	}, gate)
}
