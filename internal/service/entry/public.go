package entry

import (
	"context"
	"fmt"

	"github.com/fieldpost/backend/internal/domain"
)

// ListPublic returns the active entries only while the collection is
// public. The flag is read from the settings store on every call, never
// from an in-process cache. A private collection is a distinct not-found
// signal, not an empty listing.
func (s *Service) ListPublic(ctx context.Context) ([]*domain.Entry, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read visibility settings: %w", err)
	}

	if !settings.IsPublic {
		return nil, fmt.Errorf("collection is not public: %w", domain.ErrNotFound)
	}

	entries, err := s.entries.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list public entries: %w", err)
	}

	return entries, nil
}
