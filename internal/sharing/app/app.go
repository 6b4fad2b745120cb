package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	httpapi "github.com/aussiebroadwan/notecards/internal/sharing/http"
	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/internal/sharing/store/drivers/sqlite"
	"github.com/aussiebroadwan/notecards/pkg/jwtx"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application is the deck sharing service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keys       *jwtx.KeySet
	verifier   jwtx.Verifier
	publisher  events.Publisher
	httpClient *http.Client

	// Services
	deckService         *service.DeckService
	cardService         *service.CardService
	userService         *service.UserService
	invitationService   *service.InvitationService
	sharingService      *service.SharingService
	housekeepingService *service.HousekeepingService
	keyRefreshService   *service.KeyRefreshService // nil when keys come from a file

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "sharing-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, verifier, err := InitVerifier(context.Background(), cfg, app.httpClient, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize verification keys: %w", err)
	}
	app.keys = keys
	app.verifier = verifier

	if err := app.initEvents(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()
	if app.keyRefreshService != nil {
		app.keyRefreshService.Start()
	}

	app.logger.Info("sharing service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains HTTP traffic, stops background work and closes the
// publisher and database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down sharing service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()
	if app.keyRefreshService != nil {
		app.keyRefreshService.Stop()
	}

	if err := app.publisher.Close(); err != nil {
		app.logger.Error("error closing event publisher", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("sharing service stopped")
	return nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initEvents connects to the broker, or falls back to logging events.
func (app *Application) initEvents() error {
	if app.cfg.AMQPURL == "" {
		app.publisher = events.LogPublisher{Logger: app.logger}
		app.logger.Info("no broker configured, share events will be logged")
		return nil
	}

	pub, err := events.NewAMQPPublisher(app.cfg.AMQPURL, app.cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("failed to connect event publisher: %w", err)
	}
	app.publisher = pub
	app.logger.Info("publishing share events", "queue", app.cfg.AMQPQueue)
	return nil
}

// initServices builds the business services.
func (app *Application) initServices() {
	deps := service.Deps{
		Store:  app.db,
		Events: app.publisher,
	}

	members := service.NewMembershipService(deps)
	app.invitationService = service.NewInvitationService(deps, app.cfg.InviteTTL)
	app.sharingService = service.NewSharingService(members, app.invitationService)
	app.deckService = service.NewDeckService(deps)
	app.cardService = service.NewCardService(deps)
	app.userService = service.NewUserService(deps, app.invitationService)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	if app.cfg.JWKSURL != "" {
		app.keyRefreshService = service.NewKeyRefreshService(
			app.keys,
			app.cfg.JWKSURL,
			app.httpClient,
			app.logger,
			app.cfg.JWKSRefreshInterval,
		)
	}
}

// initHTTP builds the router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.DeckService = app.deckService
	router.CardService = app.cardService
	router.UserService = app.userService
	router.InvitationService = app.invitationService
	router.SharingService = app.sharingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
