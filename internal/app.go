// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "wishfund/internal/api"
	"wishfund/internal/api/handler"
	"wishfund/internal/config"
	"wishfund/internal/repository"
	"wishfund/internal/repository/postgres"
	"wishfund/internal/service"
	"wishfund/internal/util"
	"wishfund/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository  repository.UserRepository
	WishRepository  repository.WishRepository
	OfferRepository repository.OfferRepository

	// Services
	ContributionService service.ContributionService
	OfferService        service.OfferService
	WishService         service.WishService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.", "host", cfg.DB.Host, "lock_timeout", cfg.DB.LockTimeout)

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository()
	app.WishRepository = postgres.NewWishRepository()
	app.OfferRepository = postgres.NewOfferRepository()

	// 5. Initialize Services
	app.ContributionService = service.NewContributionService(
		app.DB,
		app.UserRepository,
		app.WishRepository,
		app.OfferRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		service.ContributionOptions{
			Timeout:     cfg.Contribution.Timeout,
			LockTimeout: cfg.DB.LockTimeout,
		},
		app.Logger,
	)
	app.OfferService = service.NewOfferService(app.DB, app.WishRepository, app.OfferRepository)
	app.WishService = service.NewWishService(
		app.DB,
		app.DB,
		app.WishRepository,
		app.OfferRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		db.TxOptions{LockTimeout: cfg.DB.LockTimeout},
	)

	// 6. Initialize HTTP Handlers and Router
	offerHandler := handler.NewOfferHandler(
		app.ContributionService,
		app.OfferService,
		handler.RetryPolicy{MaxRetries: cfg.Contribution.MaxRetries, Base: cfg.Contribution.RetryBase},
		app.Logger,
	)
	wishHandler := handler.NewWishHandler(app.WishService, app.Logger)
	app.HTTPHandler = router.NewRouter(offerHandler, wishHandler)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	return nil
}
