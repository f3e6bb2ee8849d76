// Package blob stores raw image bytes outside the database. Two
// implementations exist: a local filesystem store and an S3-compatible
// store. Paths are keyed by entry id, so concurrent saves for different
// entries never collide and a given entry's image is written exactly once.
package blob

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Store is the contract the services consume.
type Store interface {
	// Save persists the image bytes for an entry and returns the blob path.
	Save(ctx context.Context, id uuid.UUID, data []byte, mime string) (string, error)

	// Open returns a reader over the stored bytes.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the blob. Idempotent: deleting a missing path is a
	// success, since the sweeper may retry after a partial failure.
	Delete(ctx context.Context, path string) error
}

// ObjectPath derives the blob key for an entry from its id and MIME type.
// Unrecognized MIME types fall back to jpg, matching how captures without a
// declared type are treated.
func ObjectPath(id uuid.UUID, mime string) string {
	ext := "jpg"
	switch mime {
	case "image/png":
		ext = "png"
	case "image/webp":
		ext = "webp"
	case "image/gif":
		ext = "gif"
	}
	return "images/" + id.String() + "." + ext
}
