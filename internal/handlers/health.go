package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/benx421/simple-banking/internal/api"
)

// GetHealth handles GET /health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		h.writeJSON(w, r, http.StatusServiceUnavailable, api.HealthResponse{
			Status: api.Unhealthy,
		})
		return
	}

	h.writeJSON(w, r, http.StatusOK, api.HealthResponse{
		Status: api.Healthy,
	})
}
