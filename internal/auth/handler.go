package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/adminkit/internal/pkg/message"
	"github.com/ferdiebergado/adminkit/internal/pkg/web"
	"github.com/ferdiebergado/adminkit/internal/user"
)

const maskChar = "*"

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (token string, u user.User, err error)
	Login(ctx context.Context, params LoginParams) (token string, u user.User, err error)
	VerifyEmail(ctx context.Context, token string) (msg string, err error)
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	Name     string `json:"name,omitempty" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r *RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", maskChar),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// AuthResponse carries the session token and the account view returned by
// register and login.
type AuthResponse struct {
	Token string    `json:"token"`
	User  user.View `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	token, newUser, err := h.svc.Register(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			web.RespondBadRequest(w, err, message.InvalidInput, nil)
		case errors.Is(err, user.ErrDuplicateEmail):
			web.RespondConflict(w, err, message.UserExists, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := message.RegisterSuccess
	web.RespondCreated(w, &msg, &AuthResponse{Token: token, User: newUser.View()})
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r *LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := LoginParams(req)
	token, u, err := h.svc.Login(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			web.RespondUnauthorized(w, err, message.InvalidCredentials, nil)
		case errors.Is(err, ErrUserBlocked):
			web.RespondForbidden(w, err, message.UserBlocked, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := message.LoggedIn
	web.RespondOK(w, &msg, &AuthResponse{Token: token, User: u.View()})
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	msg, err := h.svc.VerifyEmail(r.Context(), token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, message.InvalidVerifyToken, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK[struct{}](w, &msg, nil)
}
