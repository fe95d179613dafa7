package session_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pattarapon/hr-console/internal/session"
)

var _ = Describe("Guard", func() {
	var (
		manager *session.Manager
		guard   *session.Guard
	)

	BeforeEach(func() {
		manager = session.NewManager(session.NewMemoryTokenStore(), testLogger())
		guard = session.NewGuard(manager, testLogger())
	})

	login := func(role string) {
		token := signToken(jwt.MapClaims{
			"username": "somsak",
			"role":     role,
			"exp":      time.Now().Add(time.Hour).Unix(),
		})
		Expect(manager.SetToken(token)).To(Succeed())
	}

	Describe("Evaluate", func() {
		It("should send a missing session to the login page", func() {
			decision := guard.Evaluate("")
			Expect(decision.State).To(Equal(session.StateUnauthenticated))
			Expect(decision.RedirectTo).To(Equal(session.LoginPath))
		})

		It("should authorize any role when none is required", func() {
			login("EMPLOYEE")
			decision := guard.Evaluate("")
			Expect(decision.State).To(Equal(session.StateAuthorized))
			Expect(decision.Identity.Username).To(Equal("somsak"))
		})

		It("should forbid a role mismatch but keep the session", func() {
			login("HR")
			decision := guard.Evaluate("ADMIN")
			Expect(decision.State).To(Equal(session.StateForbidden))
			Expect(decision.RedirectTo).To(Equal(session.DefaultPath))

			// the session survives: only this screen is off limits
			_, ok := manager.Token()
			Expect(ok).To(BeTrue())
		})

		It("should authorize the exact required role", func() {
			login("ADMIN")
			decision := guard.Evaluate("ADMIN")
			Expect(decision.State).To(Equal(session.StateAuthorized))
		})

		It("should clear an expired session and require login", func() {
			token := signToken(jwt.MapClaims{
				"username": "somsak",
				"role":     "ADMIN",
				"exp":      time.Now().Add(-time.Hour).Unix(),
			})
			Expect(manager.SetToken(token)).To(Succeed())

			decision := guard.Evaluate("")
			Expect(decision.State).To(Equal(session.StateUnauthenticated))
			Expect(decision.RedirectTo).To(Equal(session.LoginPath))

			_, ok := manager.Token()
			Expect(ok).To(BeFalse())
		})

		It("should clear a malformed token and require login", func() {
			Expect(manager.SetToken("garbage")).To(Succeed())

			decision := guard.Evaluate("")
			Expect(decision.State).To(Equal(session.StateUnauthenticated))

			_, ok := manager.Token()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Middleware", func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		It("should pass authorized requests through", func() {
			login("HR")
			rec := httptest.NewRecorder()
			guard.Middleware("")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("should answer 401 with a login redirect when unauthenticated", func() {
			rec := httptest.NewRecorder()
			guard.Middleware("")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(MatchJSON(`{"redirect":"/login"}`))
		})

		It("should answer 403 with a home redirect on a role mismatch", func() {
			login("HR")
			rec := httptest.NewRecorder()
			guard.Middleware("ADMIN")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(rec.Body.String()).To(MatchJSON(`{"redirect":"/"}`))
		})
	})
})
