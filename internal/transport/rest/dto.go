package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

// EntrySummary is the listing shape.
type EntrySummary struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	ImageURL    string    `json:"image_url"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Confidence  *float64  `json:"confidence"`
	Tags        []string  `json:"tags"`
	Shared      bool      `json:"shared"`
}

// EntryDetail is the single-entry shape. DeletedAt is set only while the
// entry sits in its restore window.
type EntryDetail struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	ImageURL    string     `json:"image_url"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Confidence  *float64   `json:"confidence"`
	Tags        []string   `json:"tags"`
	Shared      bool       `json:"shared"`
	ShareURL    *string    `json:"share_url"`
}

// SettingsPayload is both the read and the update shape for visibility.
type SettingsPayload struct {
	IsPublic bool `json:"is_public"`
}

// SharePayload toggles sharing on an entry.
type SharePayload struct {
	Enable bool `json:"enable"`
}

// CreateEntryResponse wraps the detail of a freshly ingested entry.
type CreateEntryResponse struct {
	Entry EntryDetail `json:"entry"`
}

func entrySummary(e *domain.Entry) EntrySummary {
	return EntrySummary{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		ImageURL:    "/media/" + e.ImagePath,
		Label:       e.Label,
		Description: e.Description,
		Confidence:  e.Confidence,
		Tags:        e.Tags,
		Shared:      e.IsShared(),
	}
}

func entrySummaries(entries []*domain.Entry) []EntrySummary {
	out := make([]EntrySummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, entrySummary(e))
	}
	return out
}

func entryDetail(e *domain.Entry) EntryDetail {
	var shareURL *string
	if e.ShareToken != nil {
		u := "/share/" + *e.ShareToken
		shareURL = &u
	}

	return EntryDetail{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		DeletedAt:   e.DeletedAt,
		ImageURL:    "/media/" + e.ImagePath,
		Label:       e.Label,
		Description: e.Description,
		Confidence:  e.Confidence,
		Tags:        e.Tags,
		Shared:      e.IsShared(),
		ShareURL:    shareURL,
	}
}
