package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pattarapon/hr-console/internal"
	"github.com/pattarapon/hr-console/internal/api"
	"github.com/pattarapon/hr-console/internal/session"
	"github.com/pattarapon/hr-console/internal/transport"
)

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Signup(ctx context.Context, req api.SignupRequest) error
}

// Handler owns the console-side auth flows: exchanging credentials for a
// token, self-registration, and session teardown.
type Handler struct {
	*transport.BaseHandler
	client   AuthAPI
	sessions *session.Manager
}

func NewHandler(base *transport.BaseHandler, client AuthAPI, sessions *session.Manager) *Handler {
	return &Handler{
		BaseHandler: base,
		client:      client,
		sessions:    sessions,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.client.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, internal.ErrTokenMissing) {
		h.WriteError(w, http.StatusBadGateway, "login response carried no token")
		return
	}
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	if err := h.sessions.SetToken(token); err != nil {
		h.Logger.Error("failed to persist session token", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	h.WriteJSON(w, http.StatusOK, RedirectResponse{Redirect: session.DefaultPath})
}

// Register forwards the signup and sends the user to the login page no
// matter what came back; the signup response is never inspected.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.client.Signup(r.Context(), api.SignupRequest{
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		EmployeeID: req.EmployeeID,
	}); err != nil {
		h.Logger.Warn("signup call failed", "error", err)
	}

	h.WriteJSON(w, http.StatusOK, RedirectResponse{Redirect: session.LoginPath})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearSession(); err != nil {
		h.Logger.Error("failed to clear session", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	h.WriteJSON(w, http.StatusOK, RedirectResponse{Redirect: session.LoginPath})
}

// Me reports the identity decoded from the current token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := h.sessions.Identity()
	if err != nil {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}
	h.WriteJSON(w, http.StatusOK, MeResponse{
		Username: identity.Username,
		Role:     identity.Role,
	})
}
