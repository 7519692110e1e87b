package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/systemifyautomation/html-to-pdf/internal/pdf/http"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/ratelimit"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/renderer"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/service"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store/drivers/jsonfile"
	"github.com/systemifyautomation/html-to-pdf/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "2.0.2"
)

// Application encapsulates the conversion service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	store    *jsonfile.Store
	limiter  *ratelimit.Limiter
	chrome   *renderer.Chrome
	stopScan func()

	// Services
	keyService     *service.KeyService
	convertService *service.ConvertService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "html-to-pdf",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Load the key file first, nothing works without credentials
	app.store = jsonfile.New(cfg.KeysFile)
	if err := app.store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load key file %s: %w", cfg.KeysFile, err)
	}

	app.limiter = ratelimit.New(app.store.RateLimit())

	// Start Chrome eagerly so a broken install fails the boot, not the
	// first conversion request.
	chrome, err := renderer.NewChrome()
	if err != nil {
		return nil, fmt.Errorf("failed to start renderer: %w", err)
	}
	app.chrome = chrome

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.stopScan = app.limiter.StartCleanup(app.cfg.LimiterSweep)

	rl := app.store.RateLimit()
	app.logger.Info("html-to-pdf service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"requests_per_minute", rl.RequestsPerMinute,
		"requests_per_hour", rl.RequestsPerHour,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down html-to-pdf service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.stopScan != nil {
		app.stopScan()
	}
	app.chrome.Close()

	app.logger.Info("html-to-pdf service stopped")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.keyService = &service.KeyService{Store: app.store, Limiter: app.limiter}
	app.convertService = &service.ConvertService{
		Renderer: app.chrome,
		Timeout:  app.cfg.RenderTimeout,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	info := LoadVersionInfo(app.cfg.VersionFile)

	router := httpapi.NewRouter(info, app.store, app.limiter, app.logger)
	router.KeyService = app.keyService
	router.ConvertService = app.convertService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
