package rest

import (
	"net/http"
	"time"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version string
	synsets int
}

// NewHealthHandler creates a HealthHandler. synsets is the number of
// synsets loaded into the taxonomy at startup.
func NewHealthHandler(version string, synsets int) *HealthHandler {
	return &HealthHandler{version: version, synsets: synsets}
}

// HealthResponse is the JSON response for the health endpoints.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Synsets   int       `json:"synsets,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. The taxonomy is loaded in-process
// before the server starts, so readiness reports 200 once the process
// is serving and 503 only if the taxonomy came up empty.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.synsets == 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Synsets:   h.synsets,
		Timestamp: time.Now(),
	})
}
