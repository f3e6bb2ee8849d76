package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Settings *SettingsHandler
	Entries  *EntryHandler
	Media    *MediaHandler
}

// NewRouter builds the route table. API endpoints live under /api; media
// streaming sits at the root so stored image_url values resolve directly.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.Health.Health)

	mux.HandleFunc("GET /api/settings", h.Settings.Get)
	mux.HandleFunc("PUT /api/settings", h.Settings.Update)

	mux.HandleFunc("GET /api/entries", h.Entries.List)
	mux.HandleFunc("POST /api/entries", h.Entries.Create)
	mux.HandleFunc("GET /api/entries/{id}", h.Entries.Get)
	mux.HandleFunc("POST /api/entries/{id}/delete", h.Entries.Delete)
	mux.HandleFunc("POST /api/entries/{id}/restore", h.Entries.Restore)
	mux.HandleFunc("POST /api/entries/{id}/share", h.Entries.Share)

	mux.HandleFunc("GET /api/share/{token}", h.Entries.Shared)
	mux.HandleFunc("GET /api/public/entries", h.Entries.ListPublic)

	mux.HandleFunc("GET /media/{path...}", h.Media.Serve)

	return mux
}
