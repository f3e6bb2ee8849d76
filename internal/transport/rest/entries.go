package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
	"github.com/fieldpost/backend/internal/service/entry"
)

type entryService interface {
	Create(ctx context.Context, input entry.CreateInput) (*domain.Entry, error)
	List(ctx context.Context) ([]*domain.Entry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	SetShare(ctx context.Context, id uuid.UUID, enable bool) (*domain.Entry, error)
	GetShared(ctx context.Context, token string) (*domain.Entry, error)
	ListPublic(ctx context.Context) ([]*domain.Entry, error)
}

// EntryHandler serves the entry REST endpoints.
type EntryHandler struct {
	entries        entryService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewEntryHandler creates an EntryHandler. maxUploadBytes caps the multipart
// request body on ingestion.
func NewEntryHandler(entries entryService, maxUploadBytes int64, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		entries:        entries,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "entries"),
	}
}

// Create ingests a capture from the multipart "image" field.
// POST /api/entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "image exceeds upload limit")
			return
		}
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "image exceeds upload limit")
			return
		}
		writeError(w, http.StatusBadRequest, "unreadable image field")
		return
	}

	created, err := h.entries.Create(r.Context(), entry.CreateInput{
		Data: data,
		MIME: header.Header.Get("Content-Type"),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, CreateEntryResponse{Entry: entryDetail(created)})
}

// List returns active entries, newest first.
// GET /api/entries
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entrySummaries(entries))
}

// Get returns one entry, soft-deleted or not.
// GET /api/entries/{id}
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	e, err := h.entries.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entryDetail(e))
}

// Delete soft-deletes an entry. Repeating the call is a no-op success.
// POST /api/entries/{id}/delete
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.entries.SoftDelete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Restore un-deletes an entry within the grace window.
// POST /api/entries/{id}/restore
func (h *EntryHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.entries.Restore(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

// Share toggles sharing and returns the updated detail.
// POST /api/entries/{id}/share
func (h *EntryHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var payload SharePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.entries.SetShare(r.Context(), id, payload.Enable)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entryDetail(e))
}

// Shared resolves a share token to its entry detail.
// GET /api/share/{token}
func (h *EntryHandler) Shared(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	e, err := h.entries.GetShared(r.Context(), token)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entryDetail(e))
}

// ListPublic returns active entries while the collection is public.
// GET /api/public/entries
func (h *EntryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries.ListPublic(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entrySummaries(entries))
}

func (h *EntryHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return uuid.Nil, false
	}
	return id, true
}
