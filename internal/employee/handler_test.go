package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	employeemodel "github.com/pattarapon/hr-console/internal/core/datamodel/employee"
	"github.com/pattarapon/hr-console/internal/employee"
	"github.com/pattarapon/hr-console/internal/transport"
)

var _ = Describe("Handler", func() {
	var (
		backend *mockEmployeeAPI
		router  chi.Router
	)

	BeforeEach(func() {
		backend = &mockEmployeeAPI{}
		departments := &mockDepartmentAPI{}
		positions := &mockPositionAPI{}

		logger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))
		screen := employee.NewScreen(backend, departments, positions, logger)
		handler := employee.NewHandler(transport.NewBaseHandler(logger), screen)
		router = handler.Routes()

		Expect(screen.Controller.Load(context.Background())).To(Succeed())
		screen.Controller.StartCreate()
	})

	submittable := func() employeemodel.Form {
		form := validForm()
		return form
	}

	It("should accept a plain JSON draft", func() {
		body, err := json.Marshal(submittable())
		Expect(err).NotTo(HaveOccurred())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/form/submit", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(backend.lastForm.EmployeeCode).To(Equal("EMP-001"))
		Expect(backend.lastForm.ProfilePicture).To(BeNil())
	})

	It("should accept a multipart draft with a picture", func() {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		requestJSON, err := json.Marshal(submittable())
		Expect(err).NotTo(HaveOccurred())
		Expect(writer.WriteField("request", string(requestJSON))).To(Succeed())

		part, err := writer.CreateFormFile("file", "me.png")
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write([]byte{0x89, 0x50})
		Expect(err).NotTo(HaveOccurred())
		Expect(writer.Close()).To(Succeed())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/form/submit", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		router.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(backend.lastForm.ProfilePicture).NotTo(BeNil())
		Expect(backend.lastForm.ProfilePicture.Filename).To(Equal("me.png"))
		Expect(backend.lastForm.ProfilePicture.Content).To(Equal([]byte{0x89, 0x50}))
	})

	It("should accept a multipart draft without a picture", func() {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		requestJSON, err := json.Marshal(submittable())
		Expect(err).NotTo(HaveOccurred())
		Expect(writer.WriteField("request", string(requestJSON))).To(Succeed())
		Expect(writer.Close()).To(Succeed())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/form/submit", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		router.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(backend.lastForm.ProfilePicture).To(BeNil())
	})

	It("should reject a positions lookup without a department", func() {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/refs/positions", strings.NewReader(""))
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})
