package api

import "net/http"

// CheckHealth reports that the service is up.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, HealthResponse{
		Healthy: true,
		Version: h.version,
	})
}
