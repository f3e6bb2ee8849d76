package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

type imageService interface {
	OpenImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
}

// MediaHandler streams stored entry images.
type MediaHandler struct {
	images imageService
	log    *slog.Logger
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(images imageService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		images: images,
		log:    logger.With("handler", "media"),
	}
}

// Serve streams one image with its stored MIME type. Blob paths have the
// shape images/<entry-id>.<ext>, so the entry id comes straight from the
// requested filename.
// GET /media/{path...}
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	p := r.PathValue("path")
	if !strings.HasPrefix(p, "images/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	base := path.Base(p)
	stem := strings.TrimSuffix(base, path.Ext(base))

	id, err := uuid.Parse(stem)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	rc, mime, err := h.images.OpenImage(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	defer rc.Close() //nolint:errcheck

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "private, max-age=86400")
	if _, err := io.Copy(w, rc); err != nil {
		h.log.ErrorContext(r.Context(), "stream image",
			slog.String("path", p),
			slog.String("error", err.Error()),
		)
	}
}
