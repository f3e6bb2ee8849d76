// Command sweeper runs a single purge pass over expired soft-deleted
// entries and their stored images. It is intended to be invoked by an
// external cron job; the server runs the same sweep in-process.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/fieldpost/backend/internal/adapter/blob"
	"github.com/fieldpost/backend/internal/adapter/postgres"
	entryrepo "github.com/fieldpost/backend/internal/adapter/postgres/entry"
	"github.com/fieldpost/backend/internal/app"
	"github.com/fieldpost/backend/internal/config"
	"github.com/fieldpost/backend/internal/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	blobStore, err := newBlobStore(ctx, cfg.Blob)
	if err != nil {
		logger.Error("init blob store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sw := sweeper.New(logger, entryrepo.New(pool), blobStore, cfg.Sweeper.RestoreTTL, cfg.Sweeper.Interval)

	stats, err := sw.RunOnce(ctx)
	if err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("sweep completed",
		slog.Int("scanned", stats.Scanned),
		slog.Int("purged", stats.Purged),
		slog.Int("skipped", stats.Skipped),
	)
}

func newBlobStore(ctx context.Context, cfg config.BlobConfig) (blob.Store, error) {
	if cfg.Backend == "s3" {
		return blob.NewS3Store(ctx, cfg)
	}
	return blob.NewFSStore(cfg.Dir)
}
