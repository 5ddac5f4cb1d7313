// Package bootstrap assembles the database, external integrations and
// services shared by the HTTP server and the CLI.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashmap/internal/adapters/ai/gemini"
	"github.com/SscSPs/cashmap/internal/adapters/storage/gcs"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/core/services"
	"github.com/SscSPs/cashmap/internal/platform/config"
	"github.com/SscSPs/cashmap/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashmap/internal/utils"
	"github.com/SscSPs/cashmap/migrations"
	"github.com/SscSPs/cashmap/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App owns every long-lived resource. Close releases them in reverse order.
type App struct {
	Config   *config.Config
	Pool     *pgxpool.Pool
	Services *portssvc.ServiceContainer
	Events   *utils.PosthogClientWrapper

	logger  *slog.Logger
	closers []func()
}

// Option adjusts what New wires.
type Option func(*options)

type options struct {
	migrate bool
}

// WithMigrations applies pending schema migrations before the services start.
func WithMigrations() Option {
	return func(o *options) { o.migrate = true }
}

// New connects to the database and builds the service container. The
// classifier, archive and analytics integrations are enabled only when
// configured.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	app := &App{Config: cfg, logger: logger}

	if o.migrate {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, database.Up, logger); err != nil {
			return nil, err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	app.Pool = pool
	app.closers = append(app.closers, func() { database.ClosePgxPool(pool, logger) })

	ext := services.Integrations{}

	if cfg.GeminiAPIKey != "" {
		classifier, err := gemini.NewClassifier(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to create gemini classifier: %w", err)
		}
		ext.StructureClassifier = classifier
		ext.CategoryClassifier = classifier
		logger.Info("Gemini classifier enabled", slog.String("model", cfg.GeminiModel))
	}

	if cfg.ArchiveBucket != "" {
		archive, err := gcs.NewArchive(ctx, cfg.ArchiveBucket, cfg.GCSCredentialsFile)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to create statement archive: %w", err)
		}
		ext.Archive = archive
		app.closers = append(app.closers, func() {
			if err := archive.Close(); err != nil {
				logger.Warn("Failed to close statement archive", slog.String("error", err.Error()))
			}
		})
		logger.Info("Statement archive enabled", slog.String("bucket", cfg.ArchiveBucket))
	}

	app.Events = utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	if app.Events.IsInitialized() {
		ext.Events = app.Events
		app.closers = append(app.closers, app.Events.Close)
	}

	app.Services = services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), ext)
	return app, nil
}

// Close releases resources in the reverse order they were acquired.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Migrate moves the schema up, or all the way down when down is set.
func Migrate(cfg *config.Config, logger *slog.Logger, down bool) error {
	dir := database.Up
	if down {
		dir = database.Down
	}
	return database.RunMigrations(cfg.DatabaseURL, migrations.FS, dir, logger)
}
