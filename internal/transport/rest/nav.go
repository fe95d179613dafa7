package rest

import (
	"net/http"

	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
	"github.com/pattarapon/hr-console/internal/session"
	"github.com/pattarapon/hr-console/internal/transport"
)

// NavItem is one entry of the shared navigation shell.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type NavResponse struct {
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Items    []NavItem `json:"items"`
}

// NavHandler renders the single navigation shell every screen shares.
// Entries are filtered by role, not duplicated per screen.
type NavHandler struct {
	*transport.BaseHandler
	guard *session.Guard
}

func NewNavHandler(base *transport.BaseHandler, guard *session.Guard) *NavHandler {
	return &NavHandler{BaseHandler: base, guard: guard}
}

func (h *NavHandler) Nav(w http.ResponseWriter, r *http.Request) {
	decision := h.guard.Evaluate("")
	if decision.State != session.StateAuthorized {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	items := []NavItem{
		{Label: "Home", Path: "/"},
		{Label: "Employees", Path: "/employees"},
		{Label: "Departments", Path: "/departments"},
		{Label: "Positions", Path: "/positions"},
	}
	if decision.Identity.Role == accountmodel.RoleAdmin {
		items = append(items, NavItem{Label: "User Accounts", Path: "/accounts"})
	}

	h.WriteJSON(w, http.StatusOK, NavResponse{
		Username: decision.Identity.Username,
		Role:     decision.Identity.Role,
		Items:    items,
	})
}
