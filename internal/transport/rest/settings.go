package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldpost/backend/internal/domain"
)

type settingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, isPublic bool) (*domain.Settings, error)
}

// SettingsHandler serves the visibility settings endpoints.
type SettingsHandler struct {
	settings settingsService
	log      *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(settings settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		log:      logger.With("handler", "settings"),
	}
}

// Get returns the current visibility flag.
// GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.settings.Get(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, SettingsPayload{IsPublic: st.IsPublic})
}

// Update sets the visibility flag.
// PUT /api/settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload SettingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.settings.Update(r.Context(), payload.IsPublic)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, SettingsPayload{IsPublic: st.IsPublic})
}
