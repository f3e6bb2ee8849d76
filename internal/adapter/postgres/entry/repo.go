// Package entry implements the entry store using PostgreSQL.
// It owns every lifecycle transition: creation, soft delete, restore,
// share-token changes, and the conditional hard delete used by the purge
// sweeper. Callers never mutate entry rows through any other path.
package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldpost/backend/internal/adapter/postgres"
	"github.com/fieldpost/backend/internal/domain"
)

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var entryColumns = []string{
	"id", "created_at", "deleted_at",
	"image_path", "image_mime", "image_width", "image_height",
	"label", "description", "confidence", "tags", "raw_json",
	"share_token",
}

const entryColumnsSQL = `id, created_at, deleted_at,
       image_path, image_mime, image_width, image_height,
       label, description, confidence, tags, raw_json,
       share_token`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createEntrySQL = `
INSERT INTO entries (
    id, created_at,
    image_path, image_mime, image_width, image_height,
    label, description, confidence, tags, raw_json
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + entryColumnsSQL

const getEntryByIDSQL = `
SELECT ` + entryColumnsSQL + `
FROM entries
WHERE id = $1`

const getEntryByShareTokenSQL = `
SELECT ` + entryColumnsSQL + `
FROM entries
WHERE share_token = $1 AND deleted_at IS NULL`

const softDeleteEntrySQL = `
UPDATE entries
SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + entryColumnsSQL

// restoreEntrySQL admits the exact boundary instant: an entry whose age
// equals the grace period is still restorable.
const restoreEntrySQL = `
UPDATE entries
SET deleted_at = NULL
WHERE id = $1 AND deleted_at IS NOT NULL AND deleted_at >= $2
RETURNING ` + entryColumnsSQL

const setShareTokenSQL = `
UPDATE entries
SET share_token = $2
WHERE id = $1 AND share_token IS NULL
RETURNING ` + entryColumnsSQL

const clearShareTokenSQL = `
UPDATE entries
SET share_token = NULL
WHERE id = $1
RETURNING ` + entryColumnsSQL

const listExpiredSQL = `
SELECT id, image_path, deleted_at
FROM entries
WHERE deleted_at IS NOT NULL AND deleted_at < $1`

// purgeExpiredSQL re-checks the observed deleted_at so a restore that lands
// between the sweeper's scan and its delete wins the race.
const purgeExpiredSQL = `
DELETE FROM entries
WHERE id = $1 AND deleted_at = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key regardless of deleted state.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, getEntryByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// GetByShareToken resolves a share token to its entry. Soft-deleted entries
// are unreachable through their token: both an unknown token and a token
// pointing at a deleted entry yield domain.ErrNotFound.
func (r *Repo) GetByShareToken(ctx context.Context, token string) (*domain.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, getEntryByShareTokenSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "share_token", token)
	}

	return e, nil
}

// List returns entries ordered by created_at DESC. Soft-deleted entries are
// excluded unless includeDeleted is set (internal callers only).
func (r *Repo) List(ctx context.Context, includeDeleted bool) ([]*domain.Entry, error) {
	builder := psql.Select(entryColumns...).
		From("entries").
		OrderBy("created_at DESC")

	if !includeDeleted {
		builder = builder.Where(sq.Eq{"deleted_at": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []*domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted row. The entry is not
// visible to any reader before this returns.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	created, err := scanEntry(r.db.QueryRow(ctx, createEntrySQL,
		e.ID, e.CreatedAt,
		e.ImagePath, e.ImageMIME, e.ImageWidth, e.ImageHeight,
		e.Label, e.Description, e.Confidence, e.Tags, e.Raw,
	))
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return created, nil
}

// SoftDelete marks the entry deleted if it is currently active. Calling it
// again on an already-deleted entry is a no-op that returns the existing row
// unchanged. Returns domain.ErrNotFound for unknown ids.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, softDeleteEntrySQL, id))
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "entry", id)
	}

	// 0 rows: either the entry is unknown or it was already deleted.
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return existing, nil
}

// Restore clears deleted_at if the entry is deleted and still within the
// restore window. Failure modes are stable and repeatable: unknown id yields
// domain.ErrNotFound, a not-deleted entry yields domain.ErrConflict, and a
// deleted entry past the TTL yields domain.ErrExpired.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID, ttl time.Duration) (*domain.Entry, error) {
	cutoff := time.Now().UTC().Add(-ttl)

	e, err := scanEntry(r.db.QueryRow(ctx, restoreEntrySQL, id, cutoff))
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "entry", id)
	}

	// The conditional update did not apply; classify why.
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.DeletedAt == nil {
		return nil, fmt.Errorf("entry %s: %w", id, domain.ErrConflict)
	}

	return nil, fmt.Errorf("entry %s: %w", id, domain.ErrExpired)
}

// SetShareToken persists a share token, but only when no token exists yet:
// enabling sharing on an already-shared entry leaves the existing token
// untouched and returns the current row. A unique-constraint collision with
// another entry's token surfaces as domain.ErrAlreadyExists so the caller
// can regenerate.
func (r *Repo) SetShareToken(ctx context.Context, id uuid.UUID, token string) (*domain.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, setShareTokenSQL, id, token))
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "entry", id)
	}

	// 0 rows: unknown id, or a token is already set.
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return existing, nil
}

// ClearShareToken removes the share token unconditionally.
// Returns domain.ErrNotFound for unknown ids.
func (r *Repo) ClearShareToken(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, clearShareTokenSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// ---------------------------------------------------------------------------
// Purge operations (sweeper only)
// ---------------------------------------------------------------------------

// ListExpired returns entries whose soft-delete grace period elapsed before
// the cutoff instant.
func (r *Repo) ListExpired(ctx context.Context, cutoff time.Time) ([]domain.PurgeCandidate, error) {
	rows, err := r.db.Query(ctx, listExpiredSQL, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expired entries: %w", err)
	}
	defer rows.Close()

	candidates := []domain.PurgeCandidate{}
	for rows.Next() {
		var c domain.PurgeCandidate
		if err := rows.Scan(&c.ID, &c.ImagePath, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan purge candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expired entries: %w", err)
	}

	return candidates, nil
}

// Purge hard-deletes the row only if deleted_at still carries the value
// observed during the scan. Returns false when the row was restored (or
// re-deleted with a newer timestamp) in the meantime: a lost race, not an
// error. Exactly one Purge can ever succeed per entry.
func (r *Repo) Purge(ctx context.Context, id uuid.UUID, observedDeletedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, purgeExpiredSQL, id, observedDeletedAt)
	if err != nil {
		return false, postgres.MapError(err, "entry", id)
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

// scanEntry reads one entry row in entryColumns order.
func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry

	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.DeletedAt,
		&e.ImagePath, &e.ImageMIME, &e.ImageWidth, &e.ImageHeight,
		&e.Label, &e.Description, &e.Confidence, &e.Tags, &e.Raw,
		&e.ShareToken,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
