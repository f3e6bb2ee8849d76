// Package entry implements the entry lifecycle: ingestion of captured
// images, listing, soft delete with a time-bounded restore window, share
// tokens, and the visibility-gated public listing.
package entry

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

// maxTokenAttempts bounds share-token regeneration on uniqueness conflicts.
// Hitting the bound means the entropy source is broken, not bad luck.
const maxTokenAttempts = 5

type entryStore interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	List(ctx context.Context, includeDeleted bool) ([]*domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByShareToken(ctx context.Context, token string) (*domain.Entry, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Restore(ctx context.Context, id uuid.UUID, ttl time.Duration) (*domain.Entry, error)
	SetShareToken(ctx context.Context, id uuid.UUID, token string) (*domain.Entry, error)
	ClearShareToken(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
}

type blobStore interface {
	Save(ctx context.Context, id uuid.UUID, data []byte, mime string) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

type classifier interface {
	Classify(ctx context.Context, data []byte, mime string) (*domain.Classification, error)
}

type settingsStore interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// Service provides entry operations.
type Service struct {
	entries    entryStore
	blobs      blobStore
	classifier classifier
	settings   settingsStore
	restoreTTL time.Duration
	log        *slog.Logger
}

// NewService creates a new entry service. restoreTTL is the grace period
// during which a soft-deleted entry may still be restored.
func NewService(
	log *slog.Logger,
	entries entryStore,
	blobs blobStore,
	classifier classifier,
	settings settingsStore,
	restoreTTL time.Duration,
) *Service {
	return &Service{
		entries:    entries,
		blobs:      blobs,
		classifier: classifier,
		settings:   settings,
		restoreTTL: restoreTTL,
		log:        log.With("service", "entry"),
	}
}
