package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/pattarapon/hr-console/internal"
	"github.com/pattarapon/hr-console/internal/account"
	"github.com/pattarapon/hr-console/internal/api"
	"github.com/pattarapon/hr-console/internal/auth"
	"github.com/pattarapon/hr-console/internal/department"
	"github.com/pattarapon/hr-console/internal/employee"
	"github.com/pattarapon/hr-console/internal/home"
	"github.com/pattarapon/hr-console/internal/position"
	"github.com/pattarapon/hr-console/internal/session"
	"github.com/pattarapon/hr-console/internal/transport"
	"github.com/pattarapon/hr-console/internal/transport/rest"
	"github.com/pattarapon/hr-console/pkg/logger"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the console server",
	Long:  `Start the HTTP server backing the HR console shell`,
	Run: func(cmd *cobra.Command, args []string) {
		startConsole()
	},
}

type Dependencies struct {
	Config   *internal.Config
	Sessions *session.Manager
	Store    *session.FileTokenStore
	Router   *chi.Mux
	Logger   *slog.Logger
}

func startConsole() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		if err := deps.Sessions.Watch(watchCtx, deps.Store); err != nil {
			deps.Logger.Error("token watcher stopped", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	store := session.NewFileTokenStore(config.Session.TokenPath)
	sessions := session.NewManager(store, lg)
	guard := session.NewGuard(sessions, lg)

	apiClient := api.NewClient(config.API.BaseURL, sessions, lg)
	authClient := api.NewAuthClient(apiClient)
	employeeClient := api.NewEmployeeClient(apiClient)
	departmentClient := api.NewDepartmentClient(apiClient)
	positionClient := api.NewPositionClient(apiClient)
	accountClient := api.NewAccountClient(apiClient)

	employeeScreen := employee.NewScreen(employeeClient, departmentClient, positionClient, lg)
	departmentScreen := department.NewScreen(departmentClient, lg)
	positionScreen := position.NewScreen(positionClient, departmentClient, lg)
	accountScreen := account.NewScreen(accountClient, lg)

	base := transport.NewBaseHandler(lg)
	handlers := rest.Handlers{
		Auth:        auth.NewHandler(base, authClient, sessions),
		Home:        home.NewHandler(base, employeeClient, departmentClient, positionClient, accountClient),
		Nav:         rest.NewNavHandler(base, guard),
		Employees:   employee.NewHandler(base, employeeScreen),
		Departments: department.NewHandler(base, departmentScreen),
		Positions:   position.NewHandler(base, positionScreen),
		Accounts:    account.NewHandler(base, accountScreen),
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, config, guard, handlers, lg)

	return &Dependencies{
		Config:   config,
		Sessions: sessions,
		Store:    store,
		Router:   router,
		Logger:   lg,
	}, nil
}
