// Package settings implements the visibility settings store using
// PostgreSQL. The table holds exactly one row (id = 1); readers always hit
// the database so there is no stale in-process copy of the flag.
package settings

import (
	"context"

	"github.com/fieldpost/backend/internal/adapter/postgres"
	"github.com/fieldpost/backend/internal/domain"
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSettingsSQL = `
SELECT is_public, created_at, updated_at
FROM settings
WHERE id = 1`

// updateSettingsSQL is an atomic upsert: last write wins, updated_at is
// refreshed on every write.
const updateSettingsSQL = `
INSERT INTO settings (id, is_public)
VALUES (1, $1)
ON CONFLICT (id) DO UPDATE
SET is_public = EXCLUDED.is_public, updated_at = now()
RETURNING is_public, created_at, updated_at`

const ensureSettingsSQL = `
INSERT INTO settings (id, is_public)
VALUES (1, false)
ON CONFLICT (id) DO NOTHING`

// Get returns the singleton settings row.
func (r *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	var s domain.Settings
	err := r.db.QueryRow(ctx, getSettingsSQL).
		Scan(&s.IsPublic, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "settings", 1)
	}

	return &s, nil
}

// Update upserts the singleton row with the new visibility flag and returns
// the persisted state.
func (r *Repo) Update(ctx context.Context, isPublic bool) (*domain.Settings, error) {
	var s domain.Settings
	err := r.db.QueryRow(ctx, updateSettingsSQL, isPublic).
		Scan(&s.IsPublic, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "settings", 1)
	}

	return &s, nil
}

// Ensure inserts the default row if it does not exist. Called once at boot;
// safe to call concurrently.
func (r *Repo) Ensure(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, ensureSettingsSQL); err != nil {
		return postgres.MapError(err, "settings", 1)
	}

	return nil
}
