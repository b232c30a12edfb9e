package api

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Providers     []string          `json:"providers"`
	Checks        map[string]string `json:"checks"`
}

type HealthHandler struct {
	version   string
	startTime time.Time
	providers []string
}

func NewHealthHandler(version string, startTime time.Time, providers []string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startTime: startTime,
		providers: providers,
	}
}

// ServeHTTP reports liveness. Upstreams are never called from here: config refuses to
// start without credentials, so every wired upstream reports "configured".
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"transcript_api": "configured",
	}
	for _, name := range h.providers {
		checks["ai_"+name] = "configured"
	}

	providers := h.providers
	if providers == nil {
		providers = []string{}
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Providers:     providers,
		Checks:        checks,
	})
}
