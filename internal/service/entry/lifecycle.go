package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

// SoftDelete marks an entry deleted. Idempotent: repeating the call on an
// already-deleted entry returns the existing state unchanged.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := s.entries.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("soft delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry soft-deleted",
		slog.String("entry_id", id.String()),
	)

	return e, nil
}

// Restore undoes a soft delete while the grace period lasts. Past the
// window it fails with domain.ErrExpired, stably on every retry; restoring
// an entry that is not deleted fails with domain.ErrConflict.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := s.entries.Restore(ctx, id, s.restoreTTL)
	if err != nil {
		return nil, fmt.Errorf("restore entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry restored",
		slog.String("entry_id", id.String()),
	)

	return e, nil
}
