package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

// SetShare toggles sharing. Enabling an already-shared entry keeps its
// existing token; disabling clears the token unconditionally. On the rare
// uniqueness collision at insert time a fresh token is generated, at most
// maxTokenAttempts times.
func (s *Service) SetShare(ctx context.Context, id uuid.UUID, enable bool) (*domain.Entry, error) {
	if !enable {
		e, err := s.entries.ClearShareToken(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("disable share: %w", err)
		}

		s.log.InfoContext(ctx, "share disabled", slog.String("entry_id", id.String()))
		return e, nil
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := generateShareToken()
		if err != nil {
			return nil, fmt.Errorf("generate share token: %w", err)
		}

		e, err := s.entries.SetShareToken(ctx, id, token)
		if err == nil {
			s.log.InfoContext(ctx, "share enabled", slog.String("entry_id", id.String()))
			return e, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("enable share: %w", err)
		}

		s.log.WarnContext(ctx, "share token collision, regenerating",
			slog.String("entry_id", id.String()),
			slog.Int("attempt", attempt+1),
		)
	}

	// Five collisions in a row from a 256-bit space is an entropy bug.
	return nil, fmt.Errorf("enable share for %s: token collisions exhausted retries: %w", id, domain.ErrStorage)
}

// GetShared resolves a share token to its entry. Unknown tokens and tokens
// of soft-deleted entries are both domain.ErrNotFound.
func (s *Service) GetShared(ctx context.Context, token string) (*domain.Entry, error) {
	e, err := s.entries.GetByShareToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get shared entry: %w", err)
	}

	return e, nil
}
