package handlers

import (
	"net/http"
	"time"
)

// HealthResponse reports liveness and a few counters
type HealthResponse struct {
	Status         string `json:"status" example:"healthy"`
	Uptime         string `json:"uptime" example:"1h2m3s"`
	Pipelines      int    `json:"pipelines" example:"2"`
	OpenBuilders   int    `json:"open_builders" example:"0"`
	CatalogSources int    `json:"catalog_sources" example:"5"`
}

// HealthCheck reports service liveness
// @Summary Health check
// @Description Returns service status with store and session counters
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:         "healthy",
		Uptime:         h.clock().Sub(h.startedAt).Truncate(time.Second).String(),
		Pipelines:      h.pipelines.Len(),
		OpenBuilders:   h.sessions.Len(),
		CatalogSources: len(h.catalog.Sources()),
	})
}
