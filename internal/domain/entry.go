package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entry is a single classified capture: the stored image reference plus the
// classification result. Image and classification fields are set once at
// creation and never mutated; only the lifecycle timestamp (DeletedAt) and
// the share token change afterwards.
type Entry struct {
	ID        uuid.UUID
	CreatedAt time.Time
	DeletedAt *time.Time

	ImagePath   string
	ImageMIME   string
	ImageWidth  *int
	ImageHeight *int

	Label       string
	Description string
	Confidence  *float64
	Tags        []string

	// Raw preserves the provider's full response for diagnostics.
	// It is stored verbatim and never interpreted.
	Raw json.RawMessage

	// ShareToken is non-nil iff the entry is currently shared. The token is
	// globally unique across all entries, deleted or not.
	ShareToken *string
}

// IsDeleted returns true if the entry has been soft-deleted.
func (e *Entry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// IsShared returns true if the entry has a share token.
func (e *Entry) IsShared() bool {
	return e.ShareToken != nil
}

// RestoreDeadline returns the last instant at which the entry can still be
// restored. The zero time is returned for entries that are not deleted.
func (e *Entry) RestoreDeadline(ttl time.Duration) time.Time {
	if e.DeletedAt == nil {
		return time.Time{}
	}
	return e.DeletedAt.Add(ttl)
}

// PurgeCandidate is one row of the sweeper's scan: enough to perform the
// conditional hard delete and remove the blob afterwards.
type PurgeCandidate struct {
	ID        uuid.UUID
	ImagePath string
	DeletedAt time.Time
}

// Classification is the normalized result of one provider call.
type Classification struct {
	Label       string
	Description string
	Confidence  *float64
	Tags        []string

	// Raw is the provider's complete response message as JSON.
	Raw json.RawMessage
}

// Settings is the singleton record gating public visibility of the
// collection. Last write wins; no history is kept.
type Settings struct {
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
