// Package sweeper hard-deletes entries whose soft-delete grace period has
// expired, along with their stored images. It runs as a periodic in-process
// loop and as a one-shot job.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

type entryStore interface {
	ListExpired(ctx context.Context, cutoff time.Time) ([]domain.PurgeCandidate, error)
	Purge(ctx context.Context, id uuid.UUID, observedDeletedAt time.Time) (bool, error)
}

type blobStore interface {
	Delete(ctx context.Context, path string) error
}

// Sweeper purges expired soft-deleted entries.
type Sweeper struct {
	entries    entryStore
	blobs      blobStore
	restoreTTL time.Duration
	interval   time.Duration
	log        *slog.Logger
}

// New creates a sweeper. restoreTTL is the grace period a deleted entry
// must outlive before it becomes purgeable; interval is the period of the
// background loop.
func New(log *slog.Logger, entries entryStore, blobs blobStore, restoreTTL, interval time.Duration) *Sweeper {
	return &Sweeper{
		entries:    entries,
		blobs:      blobs,
		restoreTTL: restoreTTL,
		interval:   interval,
		log:        log.With(slog.String("component", "sweeper")),
	}
}

// Stats summarizes one sweep pass.
type Stats struct {
	Scanned int
	Purged  int
	Skipped int
}

// RunOnce performs a single sweep: scan for expired candidates, then for
// each one hard-delete the row conditionally and remove its blob. A row
// whose deleted_at changed since the scan was restored concurrently and is
// skipped. The database row goes first; if the blob delete then fails, the
// orphaned file is logged and left for the next operator pass, never a
// dangling row pointing at nothing.
func (s *Sweeper) RunOnce(ctx context.Context) (Stats, error) {
	cutoff := time.Now().UTC().Add(-s.restoreTTL)

	candidates, err := s.entries.ListExpired(ctx, cutoff)
	if err != nil {
		return Stats{}, fmt.Errorf("scan expired entries: %w", err)
	}

	stats := Stats{Scanned: len(candidates)}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		purged, err := s.entries.Purge(ctx, c.ID, c.DeletedAt)
		if err != nil {
			s.log.ErrorContext(ctx, "purge failed",
				slog.String("entry_id", c.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !purged {
			// Restored (or re-deleted) between scan and delete.
			stats.Skipped++
			continue
		}

		stats.Purged++

		if err := s.blobs.Delete(ctx, c.ImagePath); err != nil {
			s.log.ErrorContext(ctx, "orphaned blob after purge",
				slog.String("entry_id", c.ID.String()),
				slog.String("path", c.ImagePath),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "sweep complete",
		slog.Int("scanned", stats.Scanned),
		slog.Int("purged", stats.Purged),
		slog.Int("skipped", stats.Skipped),
	)

	return stats, nil
}

// Run sweeps on a fixed interval until the context is cancelled. The first
// sweep happens after one full interval, not at startup.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "sweeper started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.log.ErrorContext(ctx, "sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
