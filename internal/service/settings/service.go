package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldpost/backend/internal/domain"
)

type settingsStore interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, isPublic bool) (*domain.Settings, error)
}

type Service struct {
	log   *slog.Logger
	store settingsStore
}

func NewService(log *slog.Logger, store settingsStore) *Service {
	return &Service{
		log:   log.With(slog.String("service", "settings")),
		store: store,
	}
}

// Get returns the single settings row.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	st, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return st, nil
}

// Update flips the public visibility flag and returns the new state.
func (s *Service) Update(ctx context.Context, isPublic bool) (*domain.Settings, error) {
	st, err := s.store.Update(ctx, isPublic)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.log.InfoContext(ctx, "visibility updated", slog.Bool("is_public", st.IsPublic))

	return st, nil
}
