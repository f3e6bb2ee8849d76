package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	db      dbPinger
	model   string
	version string
}

// NewHealthHandler creates a HealthHandler. model is the configured
// classifier model id, reported so operators can confirm what is live.
func NewHealthHandler(db dbPinger, model, version string) *HealthHandler {
	return &HealthHandler{db: db, model: model, version: version}
}

// HealthResponse is the JSON response for /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Model     string    `json:"model"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports liveness and the configured classifier model. Pings the
// DB: 200 if reachable, 503 if not.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status = "down"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Model:     h.model,
		Version:   h.version,
		Timestamp: time.Now(),
	})
}
