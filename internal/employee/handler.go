package employee

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"

	employeemodel "github.com/pattarapon/hr-console/internal/core/datamodel/employee"
	"github.com/pattarapon/hr-console/internal/transport"
)

// maxUploadBytes bounds the profile picture part.
const maxUploadBytes = 10 << 20

type Handler struct {
	*transport.ScreenHandler[employeemodel.Employee, employeemodel.Form]
	screen *Screen
}

func NewHandler(base *transport.BaseHandler, screen *Screen) *Handler {
	h := &Handler{
		ScreenHandler: transport.NewScreenHandler(base, screen.Controller),
		screen:        screen,
	}
	h.SetDraftDecoder(h.decodeDraft)
	return h
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	h.Mount(r)
	r.Get("/refs/departments", h.departmentRefs)
	r.Get("/refs/positions", h.positionRefs)
	return r
}

// decodeDraft accepts either a plain JSON draft or the multipart shape
// the remote API itself uses: a "request" JSON part plus an optional
// "file" image part.
func (h *Handler) decodeDraft(r *http.Request) (employeemodel.Form, error) {
	var form employeemodel.Form

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		err := json.NewDecoder(r.Body).Decode(&form)
		return form, err
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return form, err
	}
	if err := json.Unmarshal([]byte(r.FormValue("request")), &form); err != nil {
		return form, err
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return form, nil
	}
	if err != nil {
		return form, err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return form, err
	}
	form.ProfilePicture = &employeemodel.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}
	return form, nil
}

func (h *Handler) departmentRefs(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.screen.DepartmentOptions())
}

func (h *Handler) positionRefs(w http.ResponseWriter, r *http.Request) {
	departmentID, err := strconv.ParseInt(r.URL.Query().Get("departmentId"), 10, 64)
	if err != nil || departmentID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "departmentId is required")
		return
	}
	positions, err := h.screen.PositionOptions(r.Context(), departmentID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, positions)
}
