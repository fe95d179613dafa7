package account

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
	"github.com/pattarapon/hr-console/internal/transport"
)

type Handler struct {
	*transport.ScreenHandler[accountmodel.Account, accountmodel.Form]
	screen *Screen
}

func NewHandler(base *transport.BaseHandler, screen *Screen) *Handler {
	return &Handler{
		ScreenHandler: transport.NewScreenHandler(base, screen.Controller),
		screen:        screen,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	h.Mount(r)
	r.Post("/grant", h.grant)
	return r
}

// grant opens the create-credentials form for a row still without a
// login. The shell posts the row it renders, ids and all.
func (h *Handler) grant(w http.ResponseWriter, r *http.Request) {
	var row accountmodel.Account
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.screen.GrantCredentials(row)
	h.WriteJSON(w, http.StatusOK, h.screen.Controller.View())
}
