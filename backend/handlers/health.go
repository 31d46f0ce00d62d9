// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports service name and version for liveness probes and the CLI

package handlers

import (
	"net/http"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// Health returns API health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	version := "dev"
	if h.cfg != nil && h.cfg.Version != "" {
		version = h.cfg.Version
	}

	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: serviceName,
		Version: version,
	})
}
