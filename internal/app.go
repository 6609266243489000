// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/pkg/errors"

	router "sales-analytics/internal/api"
	"sales-analytics/internal/api/handler"
	"sales-analytics/internal/config"
	"sales-analytics/internal/domain"
	"sales-analytics/internal/repository"
	"sales-analytics/internal/repository/memory"
	"sales-analytics/internal/service"
	"sales-analytics/internal/util"
	"sales-analytics/pkg/grpcserver"
)

// HealthServiceName is the gRPC health service reported alongside the
// overall server status.
const HealthServiceName = "sales.analytics"

// Options are the command line overrides applied on top of the loaded config.
type Options struct {
	ConfigPath string
	SeedFile   string
}

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	// Repositories
	TransactionRepository repository.TransactionRepository

	// Services
	SalesService service.SalesService

	// HTTP API
	HTTPHandler http.Handler

	// GRPC carries the readiness probe. It only listens when a gRPC port is configured.
	GRPC *grpcserver.Server
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context, opts Options) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if opts.SeedFile != "" {
		cfg.SeedFile = opts.SeedFile
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(util.LoggerOptions{Level: cfg.LogLevel, Format: cfg.LogFormat})
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.", "config", cfg.String())

	// 3. Initialize Repositories
	app.TransactionRepository = memory.NewTransactionRepository()
	app.Logger.Info("Repositories initialized.")

	// 4. Initialize Services
	app.SalesService = service.NewSalesService(app.TransactionRepository, app.Logger)
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers and Router
	salesHandler := handler.NewSalesHandler(app.SalesService, app.Logger, cfg.TopCustomersDefaultLimit)
	app.HTTPHandler = router.NewRouter(salesHandler, app.Logger, cfg.RequestTimeout)
	app.Logger.Info("HTTP router and handlers initialized.")

	// 6. Health server
	grpcAddr := ""
	if cfg.GRPCPort != "" {
		grpcAddr = ":" + cfg.GRPCPort
	}
	app.GRPC = grpcserver.New(grpcAddr, HealthServiceName)

	// 7. Seed data
	if cfg.SeedFile != "" {
		added, err := app.LoadSeedFile(ctx, cfg.SeedFile)
		if err != nil {
			return errors.Wrapf(err, "failed to load seed file %s", cfg.SeedFile)
		}
		app.Logger.Info("Seed transactions loaded.", "file", cfg.SeedFile, "added", added)
	}

	app.SalesService.SetReady(true)
	app.GRPC.SetServing(true, HealthServiceName)
	return nil
}

// LoadSeedFile appends the transactions stored in a JSON file. The file uses
// the same payload shapes as the ingestion endpoint.
func (app *Application) LoadSeedFile(ctx context.Context, path string) (int, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	records, err := domain.DecodeTransactionInputs(body)
	if err != nil {
		return 0, err
	}
	return app.SalesService.AppendTransactions(ctx, records)
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	if app.Logger == nil {
		return nil
	}
	app.Logger.Info("Shutting down application...")
	if app.SalesService != nil {
		app.SalesService.SetReady(false)
	}
	if app.GRPC != nil {
		app.GRPC.SetServing(false, HealthServiceName)
		app.GRPC.Stop()
		app.Logger.Info("gRPC health server stopped.")
	}
	if app.TransactionRepository != nil {
		removed := app.TransactionRepository.Clear(ctx)
		app.Logger.Info("Transaction store released.", "transactions", removed)
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}

// String summarizes the running application for startup logs.
func (app *Application) String() string {
	if app.Config == nil {
		return "application (not initialized)"
	}
	return fmt.Sprintf("sales-analytics http=:%s grpc=%q", app.Config.ServerPort, app.Config.GRPCPort)
}
