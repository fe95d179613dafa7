package department

import (
	"github.com/go-chi/chi"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	"github.com/pattarapon/hr-console/internal/transport"
)

type Handler struct {
	*transport.ScreenHandler[departmentmodel.Department, departmentmodel.Form]
}

func NewHandler(base *transport.BaseHandler, screen *Screen) *Handler {
	return &Handler{
		ScreenHandler: transport.NewScreenHandler(base, screen.Controller),
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	h.Mount(r)
	return r
}
