package handlers

import (
	"net/http"

	"pipeline-studio/internal/models"
)

// SourcesResponse lists the catalog's data sources
type SourcesResponse struct {
	Sources []models.DataSourceRef `json:"sources"`
	Count   int                    `json:"count"`
}

// OutputsResponse lists the catalog's output destinations
type OutputsResponse struct {
	Outputs []string `json:"outputs" example:"Google Sheets,Slack"`
	Count   int      `json:"count"`
}

// GetSources returns the data source catalog
// @Summary List data sources
// @Description Returns every data source the builder offers, including disabled ones
// @Tags catalog
// @Produce json
// @Success 200 {object} SourcesResponse
// @Router /api/catalog/sources [get]
func (h *Handlers) GetSources(w http.ResponseWriter, r *http.Request) {
	sources := h.catalog.Sources()
	writeJSON(w, http.StatusOK, SourcesResponse{Sources: sources, Count: len(sources)})
}

// GetOutputs returns the output destinations
// @Summary List output destinations
// @Description Returns every output destination the builder offers
// @Tags catalog
// @Produce json
// @Success 200 {object} OutputsResponse
// @Router /api/catalog/outputs [get]
func (h *Handlers) GetOutputs(w http.ResponseWriter, r *http.Request) {
	outputs := h.catalog.Outputs()
	writeJSON(w, http.StatusOK, OutputsResponse{Outputs: outputs, Count: len(outputs)})
}
