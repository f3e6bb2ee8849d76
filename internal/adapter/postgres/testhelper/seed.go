package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldpost/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntry inserts an active entry with plausible classification data.
// Returns the filled domain.Entry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool) domain.Entry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	confidence := 0.9
	entry := domain.Entry{
		ID:          uuid.New(),
		CreatedAt:   now,
		ImagePath:   "images/" + uuid.NewString() + ".jpg",
		ImageMIME:   "image/jpeg",
		Label:       "Seed Item " + suffix,
		Description: "Seeded entry " + suffix,
		Confidence:  &confidence,
		Tags:        []string{"seed", suffix},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, created_at, image_path, image_mime, label, description, confidence, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.CreatedAt, entry.ImagePath, entry.ImageMIME,
		entry.Label, entry.Description, entry.Confidence, entry.Tags,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return entry
}

// BackdateDeletion rewrites an entry's deleted_at so it falls before the
// restore window. Used to make an entry purgeable without waiting.
func BackdateDeletion(t *testing.T, pool *pgxpool.Pool, id uuid.UUID, deletedAt time.Time) {
	t.Helper()

	tag, err := pool.Exec(context.Background(),
		`UPDATE entries SET deleted_at = $2 WHERE id = $1`,
		id, deletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: BackdateDeletion: %v", err)
	}
	if tag.RowsAffected() != 1 {
		t.Fatalf("testhelper: BackdateDeletion: entry %s not found", id)
	}
}

// ResetData truncates entries and resets the settings row to private.
// Call at the start of a test that needs a clean collection.
func ResetData(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `TRUNCATE entries`); err != nil {
		t.Fatalf("testhelper: ResetData truncate entries: %v", err)
	}
	if _, err := pool.Exec(ctx, `UPDATE settings SET is_public = FALSE`); err != nil {
		t.Fatalf("testhelper: ResetData reset settings: %v", err)
	}
}
