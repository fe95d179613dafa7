package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/pattarapon/hr-console/internal"
	"github.com/pattarapon/hr-console/internal/account"
	"github.com/pattarapon/hr-console/internal/auth"
	"github.com/pattarapon/hr-console/internal/department"
	"github.com/pattarapon/hr-console/internal/employee"
	"github.com/pattarapon/hr-console/internal/home"
	"github.com/pattarapon/hr-console/internal/position"
	"github.com/pattarapon/hr-console/internal/session"
	"github.com/pattarapon/hr-console/internal/transport/middleware"
	"github.com/pattarapon/hr-console/internal/transport/swagger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	Home        *home.Handler
	Nav         *NavHandler
	Employees   *employee.Handler
	Departments *department.Handler
	Positions   *position.Handler
	Accounts    *account.Handler
}

func RegisterAllRoutes(router *chi.Mux, cfg *internal.Config, guard *session.Guard, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(cfg.API.BaseURL)

	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/console", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Login and register must work without a session.
		r.Post("/login", h.Auth.Login)
		r.Post("/register", h.Auth.Register)
		r.Post("/logout", h.Auth.Logout)

		r.Group(func(pr chi.Router) {
			pr.Use(guard.Middleware(""))

			pr.Get("/home", h.Home.Summary)
			pr.Get("/nav", h.Nav.Nav)
			pr.Get("/me", h.Auth.Me)

			pr.Mount("/employees", h.Employees.Routes())
			pr.Mount("/departments", h.Departments.Routes())
			pr.Mount("/positions", h.Positions.Routes())
		})

		// The accounts screen is the one surface gated on a role.
		r.Group(func(ar chi.Router) {
			ar.Use(guard.Middleware("ADMIN"))
			ar.Mount("/accounts", h.Accounts.Routes())
		})
	})
}
