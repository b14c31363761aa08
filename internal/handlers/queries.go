package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pipeline-studio/internal/common/errors"
	"pipeline-studio/internal/common/pagination"
	"pipeline-studio/internal/models"
)

// QueriesResponse lists one page of saved queries
type QueriesResponse struct {
	Queries []models.SavedQuery `json:"queries"`
	Count   int                 `json:"count"`
	pagination.Meta
}

// SaveQueryRequest is the body of a save-query call
type SaveQueryRequest struct {
	Query   string `json:"query" example:"what do users say about pricing?"`
	Context string `json:"context,omitempty" example:"Sales calls"`
}

// QueryMutationResponse reports whether a saved-query mutation was applied
type QueryMutationResponse struct {
	Accepted bool               `json:"accepted"`
	Query    *models.SavedQuery `json:"query,omitempty"`
}

// GetQueries searches the saved queries
// @Summary Search saved queries
// @Description Returns saved queries whose text or context contains q, ignoring case. No q returns all.
// @Tags queries
// @Produce json
// @Param q query string false "Search term"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} QueriesResponse
// @Router /api/queries [get]
func (h *Handlers) GetQueries(w http.ResponseWriter, r *http.Request) {
	queries, meta := pagination.Paginate(h.queries.Search(r.URL.Query().Get("q")), pagination.ParseParams(r))
	writeJSON(w, http.StatusOK, QueriesResponse{Queries: queries, Count: len(queries), Meta: meta})
}

// SaveQuery stores a query for reuse
// @Summary Save query
// @Description Saves a query. Blank query text is reported as not accepted.
// @Tags queries
// @Accept json
// @Produce json
// @Param query body SaveQueryRequest true "Query"
// @Success 200 {object} QueryMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Router /api/queries [post]
func (h *Handlers) SaveQuery(w http.ResponseWriter, r *http.Request) {
	var req SaveQueryRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	q, ok := h.queries.Save(req.Query, req.Context)
	resp := QueryMutationResponse{Accepted: ok}
	if ok {
		resp.Query = &q
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteQuery removes a saved query
// @Summary Delete saved query
// @Description Deletes a saved query. An unknown ID is reported as not accepted.
// @Tags queries
// @Produce json
// @Param id path int true "Query ID"
// @Success 200 {object} QueryMutationResponse
// @Failure 400 {object} ErrorResponse "ID is not a number"
// @Router /api/queries/{id} [delete]
func (h *Handlers) DeleteQuery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, errors.ValidationError("query id must be a number"))
		return
	}
	writeJSON(w, http.StatusOK, QueryMutationResponse{Accepted: h.queries.Delete(id)})
}
