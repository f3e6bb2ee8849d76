package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

// List returns active entries, newest first. Soft-deleted entries never
// appear here.
func (s *Service) List(ctx context.Context) ([]*domain.Entry, error) {
	entries, err := s.entries.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// Get returns a single entry by id, deleted or not: during the grace window
// the owner still sees a soft-deleted entry (with DeletedAt set) so it can
// be restored.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return e, nil
}
