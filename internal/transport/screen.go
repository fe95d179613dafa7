package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/pattarapon/hr-console/internal/listctrl"
)

// DraftDecoder extracts a draft from a submit request. The default reads
// a JSON body; the employee screen swaps in a multipart decoder.
type DraftDecoder[D any] func(r *http.Request) (D, error)

// ScreenHandler maps the console's HTTP surface for one screen onto its
// list controller. Every mutation responds with the freshly derived view
// so the shell never renders stale state after an action.
type ScreenHandler[T, D any] struct {
	*BaseHandler
	Controller  *listctrl.Controller[T, D]
	decodeDraft DraftDecoder[D]
}

func NewScreenHandler[T, D any](base *BaseHandler, controller *listctrl.Controller[T, D]) *ScreenHandler[T, D] {
	h := &ScreenHandler[T, D]{
		BaseHandler: base,
		Controller:  controller,
	}
	h.decodeDraft = func(r *http.Request) (D, error) {
		var draft D
		err := json.NewDecoder(r.Body).Decode(&draft)
		return draft, err
	}
	return h
}

// SetDraftDecoder replaces the JSON draft decoder.
func (h *ScreenHandler[T, D]) SetDraftDecoder(decode DraftDecoder[D]) {
	h.decodeDraft = decode
}

// Mount registers the screen routes on a router subtree.
func (h *ScreenHandler[T, D]) Mount(r chi.Router) {
	r.Get("/", h.getView)
	r.Post("/load", h.load)
	r.Post("/form/new", h.startCreate)
	r.Post("/form/edit/{id}", h.startEdit)
	r.Post("/form/submit", h.submit)
	r.Post("/form/cancel", h.cancelForm)
	r.Post("/form/touch", h.touch)
	r.Post("/delete/{id}", h.requestDelete)
	r.Post("/delete/confirm", h.confirmDelete)
	r.Post("/delete/cancel", h.cancelDelete)
	r.Post("/search", h.search)
	r.Post("/sort", h.sortBy)
	r.Post("/page", h.setPage)
	r.Post("/page-size", h.setPageSize)
}

func (h *ScreenHandler[T, D]) writeView(w http.ResponseWriter) {
	h.WriteJSON(w, http.StatusOK, h.Controller.View())
}

func (h *ScreenHandler[T, D]) getView(w http.ResponseWriter, r *http.Request) {
	h.writeView(w)
}

func (h *ScreenHandler[T, D]) load(w http.ResponseWriter, r *http.Request) {
	// failures surface as the view's transient message, not as an HTTP
	// error: the screen stays up with its previous collection
	_ = h.Controller.Load(r.Context())
	h.writeView(w)
}

func (h *ScreenHandler[T, D]) startCreate(w http.ResponseWriter, r *http.Request) {
	h.Controller.StartCreate()
	h.writeView(w)
}

func (h *ScreenHandler[T, D]) startEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Controller.StartEdit(r.Context(), id); err != nil {
		h.Logger.Warn("start edit failed", "id", id, "error", err)
	}
	h.writeView(w)
}

type submitResponse[T any] struct {
	View        listctrl.View[T] `json:"view"`
	FieldErrors interface{}      `json:"fieldErrors"`
}

func (h *ScreenHandler[T, D]) submit(w http.ResponseWriter, r *http.Request) {
	draft, err := h.decodeDraft(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid draft payload")
		return
	}

	if _, err := h.Controller.Submit(r.Context(), draft); err != nil {
		h.Logger.Warn("submit failed", "error", err)
	}

	h.WriteJSON(w, http.StatusOK, submitResponse[T]{
		View:        h.Controller.View(),
		FieldErrors: h.Controller.VisibleErrors(),
	})
}

func (h *ScreenHandler[T, D]) cancelForm(w http.ResponseWriter, r *http.Request) {
	h.Controller.CancelForm()
	h.writeView(w)
}

type touchRequest struct {
	Field string `json:"field"`
}

func (h *ScreenHandler[T, D]) touch(w http.ResponseWriter, r *http.Request) {
	var req touchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Field == "" {
		h.WriteError(w, http.StatusBadRequest, "field is required")
		return
	}
	h.Controller.Touch(req.Field)
	h.WriteJSON(w, http.StatusOK, h.Controller.VisibleErrors())
}

func (h *ScreenHandler[T, D]) requestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}
	h.Controller.RequestDelete(id)
	h.writeView(w)
}

func (h *ScreenHandler[T, D]) confirmDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.ConfirmDelete(r.Context()); err != nil {
		h.Logger.Warn("delete failed", "error", err)
	}
	h.writeView(w)
}

func (h *ScreenHandler[T, D]) cancelDelete(w http.ResponseWriter, r *http.Request) {
	h.Controller.CancelDelete()
	h.writeView(w)
}

type searchRequest struct {
	Term string `json:"term"`
}

func (h *ScreenHandler[T, D]) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid search payload")
		return
	}
	h.Controller.SetSearchTerm(req.Term)
	h.writeView(w)
}

type sortRequest struct {
	Field string `json:"field"`
}

func (h *ScreenHandler[T, D]) sortBy(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Field == "" {
		h.WriteError(w, http.StatusBadRequest, "field is required")
		return
	}
	h.Controller.SetSort(req.Field)
	h.writeView(w)
}

type pageRequest struct {
	Page int `json:"page"`
}

func (h *ScreenHandler[T, D]) setPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid page payload")
		return
	}
	h.Controller.SetPage(req.Page)
	h.writeView(w)
}

type pageSizeRequest struct {
	PageSize int `json:"pageSize"`
}

func (h *ScreenHandler[T, D]) setPageSize(w http.ResponseWriter, r *http.Request) {
	var req pageSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid page size payload")
		return
	}
	h.Controller.SetPageSize(req.PageSize)
	h.writeView(w)
}
