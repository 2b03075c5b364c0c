package user

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/adminkit/internal/pkg/message"
	"github.com/ferdiebergado/adminkit/internal/pkg/web"
)

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

type ListUsersResponse struct {
	Users []View `json:"users"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	views := make([]View, 0, len(users))
	for _, u := range users {
		views = append(views, u.View())
	}

	web.RespondOK(w, nil, &ListUsersResponse{Users: views})
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidSession, nil)
		return
	}

	u, err := h.svc.FindUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.UserNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	view := u.View()
	web.RespondOK(w, nil, &view)
}

type UserIDsRequest struct {
	IDs []string `json:"ids"`
}

func (r *UserIDsRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("ids", len(r.IDs)))
}

type BlockUsersResponse struct {
	Count       int64 `json:"count"`
	SelfBlocked bool  `json:"self_blocked"`
}

func (h *Handler) BlockUsers(w http.ResponseWriter, r *http.Request) {
	callerID, req, ok := h.bulkRequest(w, r)
	if !ok {
		return
	}

	result, err := h.svc.BlockUsers(r.Context(), callerID, req.IDs)
	if err != nil {
		respondBulkError(w, err)
		return
	}

	slog.Info("Blocked users.", "count", result.Count, "caller", callerID)

	msg := fmt.Sprintf(message.FmtBlocked, result.Count)
	web.RespondOK(w, &msg, &BlockUsersResponse{Count: result.Count, SelfBlocked: result.Self})
}

type UnblockUsersResponse struct {
	Count int64 `json:"count"`
}

func (h *Handler) UnblockUsers(w http.ResponseWriter, r *http.Request) {
	callerID, req, ok := h.bulkRequest(w, r)
	if !ok {
		return
	}

	result, err := h.svc.UnblockUsers(r.Context(), callerID, req.IDs)
	if err != nil {
		respondBulkError(w, err)
		return
	}

	slog.Info("Unblocked users.", "count", result.Count)

	msg := fmt.Sprintf(message.FmtUnblocked, result.Count)
	web.RespondOK(w, &msg, &UnblockUsersResponse{Count: result.Count})
}

type DeleteUsersResponse struct {
	Count       int64 `json:"count"`
	SelfDeleted bool  `json:"self_deleted"`
}

func (h *Handler) DeleteUsers(w http.ResponseWriter, r *http.Request) {
	callerID, req, ok := h.bulkRequest(w, r)
	if !ok {
		return
	}

	result, err := h.svc.DeleteUsers(r.Context(), callerID, req.IDs)
	if err != nil {
		respondBulkError(w, err)
		return
	}

	slog.Info("Deleted users.", "count", result.Count, "caller", callerID)

	msg := fmt.Sprintf(message.FmtDeleted, result.Count)
	web.RespondOK(w, &msg, &DeleteUsersResponse{Count: result.Count, SelfDeleted: result.Self})
}

func (h *Handler) DeleteUnverifiedUsers(w http.ResponseWriter, r *http.Request) {
	callerID, err := FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidSession, nil)
		return
	}

	result, err := h.svc.DeleteUnverifiedUsers(r.Context(), callerID)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	slog.Info("Deleted unverified users.", "count", result.Count)

	msg := fmt.Sprintf(message.FmtDeletedUnverified, result.Count)
	web.RespondOK(w, &msg, &DeleteUsersResponse{Count: result.Count, SelfDeleted: result.Self})
}

// bulkRequest resolves the caller identity and the decoded target ids shared
// by the bulk endpoints.
func (h *Handler) bulkRequest(w http.ResponseWriter, r *http.Request) (string, UserIDsRequest, bool) {
	callerID, err := FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidSession, nil)
		return "", UserIDsRequest{}, false
	}

	req, err := web.ParamsFromContext[UserIDsRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return "", UserIDsRequest{}, false
	}

	return callerID, req, true
}

func respondBulkError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNoTargets) {
		web.RespondBadRequest(w, err, message.NoUsersSelected, nil)
		return
	}
	web.RespondInternalServerError(w, err)
}
