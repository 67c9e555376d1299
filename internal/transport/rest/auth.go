package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arlearn/admin-backend/internal/domain"
	"github.com/arlearn/admin-backend/internal/service/auth"
	"github.com/arlearn/admin-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (domain.SessionRecord, error)
	Logout(ctx context.Context, rec domain.SessionRecord)
}

// AuthHandler serves the login gate endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type sessionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

// Login handles POST /api/auth/login. On success the response body is the
// session record the client must present in the X-Session header from then
// on. Bad credentials always read the same, whatever was actually wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Login(r.Context(), auth.LoginInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			h.log.ErrorContext(r.Context(), "login failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		LoginTime: rec.LoginTime,
	})
}

// Logout handles POST /api/auth/logout. The marker lives on the client, so
// this only logs the event; the client discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if rec, ok := ctxutil.SessionFromCtx(r.Context()); ok {
		h.svc.Logout(r.Context(), rec)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
