package entry

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

// OpenImage streams the stored blob for an entry together with its MIME
// type. Soft-deleted entries still resolve so the owner can render them
// during the restore window; purged entries are gone and return
// domain.ErrNotFound.
func (s *Service) OpenImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("resolve image entry: %w", err)
	}

	rc, err := s.blobs.Open(ctx, e.ImagePath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: open image %s: %v", domain.ErrStorage, e.ImagePath, err)
	}

	return rc, e.ImageMIME, nil
}
