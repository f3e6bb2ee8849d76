// Package app wires configuration, storage, services, and the HTTP server
// into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fieldpost/backend/internal/adapter/blob"
	"github.com/fieldpost/backend/internal/adapter/postgres"
	entryrepo "github.com/fieldpost/backend/internal/adapter/postgres/entry"
	settingsrepo "github.com/fieldpost/backend/internal/adapter/postgres/settings"
	"github.com/fieldpost/backend/internal/adapter/provider/anthropic"
	"github.com/fieldpost/backend/internal/config"
	entrysvc "github.com/fieldpost/backend/internal/service/entry"
	settingssvc "github.com/fieldpost/backend/internal/service/settings"
	"github.com/fieldpost/backend/internal/sweeper"
	"github.com/fieldpost/backend/internal/transport/middleware"
	"github.com/fieldpost/backend/internal/transport/rest"
)

// Run is the application entry point: load configuration, connect to the
// database, run migrations, build the object graph, and serve HTTP until
// SIGINT/SIGTERM. The purge sweeper runs as a background goroutine for the
// lifetime of the process.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	entryRepo := entryrepo.New(pool)
	settingsRepo := settingsrepo.New(pool)

	if err := settingsRepo.Ensure(ctx); err != nil {
		return fmt.Errorf("ensure settings row: %w", err)
	}

	blobStore, err := newBlobStore(ctx, cfg.Blob)
	if err != nil {
		return fmt.Errorf("init blob store: %w", err)
	}

	classifier := anthropic.NewClassifier(cfg.Classifier, logger)

	entryService := entrysvc.NewService(
		logger, entryRepo, blobStore, classifier, settingsRepo, cfg.Sweeper.RestoreTTL,
	)
	settingsService := settingssvc.NewService(logger, settingsRepo)

	sw := sweeper.New(logger, entryRepo, blobStore, cfg.Sweeper.RestoreTTL, cfg.Sweeper.Interval)
	go sw.Run(ctx)

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, cfg.Classifier.Model, BuildVersion()),
		Settings: rest.NewSettingsHandler(settingsService, logger),
		Entries:  rest.NewEntryHandler(entryService, cfg.Server.MaxUploadBytes, logger),
		Media:    rest.NewMediaHandler(entryService, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

// newBlobStore builds the configured blob backend.
func newBlobStore(ctx context.Context, cfg config.BlobConfig) (blob.Store, error) {
	switch cfg.Backend {
	case "s3":
		return blob.NewS3Store(ctx, cfg)
	default:
		return blob.NewFSStore(cfg.Dir)
	}
}
