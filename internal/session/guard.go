package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pattarapon/hr-console/internal"
)

type GuardState int

const (
	StateChecking GuardState = iota
	StateAuthorized
	StateUnauthenticated
	StateForbidden
)

func (s GuardState) String() string {
	switch s {
	case StateChecking:
		return "CHECKING"
	case StateAuthorized:
		return "AUTHORIZED"
	case StateUnauthenticated:
		return "UNAUTHENTICATED"
	case StateForbidden:
		return "FORBIDDEN"
	}
	return "UNKNOWN"
}

const (
	// LoginPath is where unauthenticated users land.
	LoginPath = "/login"
	// DefaultPath is where authenticated but unauthorized users land.
	// Never login: the user has a session, just not this screen.
	DefaultPath = "/"
)

// Decision is the outcome of evaluating access to a protected screen.
type Decision struct {
	State      GuardState
	Identity   Identity
	RedirectTo string
}

// Guard decides per screen whether to render, based on the current
// session and an optional required role.
type Guard struct {
	sessions *Manager
	logger   *slog.Logger
	now      func() time.Time
}

func NewGuard(sessions *Manager, logger *slog.Logger) *Guard {
	return &Guard{
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Evaluate resolves CHECKING into AUTHORIZED, UNAUTHENTICATED, or
// FORBIDDEN. An expired or malformed token clears the session before
// reporting UNAUTHENTICATED.
func (g *Guard) Evaluate(requiredRole string) Decision {
	_, ok := g.sessions.Token()
	if !ok {
		return Decision{State: StateUnauthenticated, RedirectTo: LoginPath}
	}

	id, err := g.sessions.Identity()
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			g.logger.Warn("session token rejected", "reason", appErr.Code)
		}
		if err := g.sessions.ClearSession(); err != nil {
			g.logger.Error("failed to clear invalid session", "error", err)
		}
		return Decision{State: StateUnauthenticated, RedirectTo: LoginPath}
	}

	if id.Expired(g.now()) {
		if err := g.sessions.ClearSession(); err != nil {
			g.logger.Error("failed to clear expired session", "error", err)
		}
		return Decision{State: StateUnauthenticated, RedirectTo: LoginPath}
	}

	if requiredRole != "" && id.Role != requiredRole {
		return Decision{State: StateForbidden, Identity: id, RedirectTo: DefaultPath}
	}

	return Decision{State: StateAuthorized, Identity: id}
}

// Middleware gates a route subtree on the guard decision. Every request
// re-evaluates, so an external logout revokes access immediately.
func (g *Guard) Middleware(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := g.Evaluate(requiredRole)
			switch decision.State {
			case StateAuthorized:
				next.ServeHTTP(w, r)
			case StateForbidden:
				writeRedirect(w, http.StatusForbidden, decision.RedirectTo)
			default:
				writeRedirect(w, http.StatusUnauthorized, decision.RedirectTo)
			}
		})
	}
}

func writeRedirect(w http.ResponseWriter, status int, to string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"redirect":"` + to + `"}`))
}
