package position

import (
	"net/http"

	"github.com/go-chi/chi"

	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
	"github.com/pattarapon/hr-console/internal/transport"
)

type Handler struct {
	*transport.ScreenHandler[positionmodel.Position, positionmodel.Form]
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
	r.Get("/refs/departments", h.departmentRefs)
	return r
}

func (h *Handler) departmentRefs(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.screen.DepartmentOptions())
}
