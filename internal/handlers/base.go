// Package handlers exposes the pipeline store, the builder wizard sessions,
// the catalog and the saved queries as a JSON API.
//
// Domain mutations never fail with an HTTP error: they answer with an
// "accepted" flag. Errors are reserved for malformed requests and reads of
// unknown resources.
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pipeline-studio/internal/catalog"
	"pipeline-studio/internal/common/errors"
	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/sessions"
	"pipeline-studio/internal/store"
)

// Handlers holds the dependencies shared by every endpoint
type Handlers struct {
	pipelines *store.PipelineStore
	queries   *store.QueryStore
	sessions  *sessions.Manager
	catalog   *catalog.Catalog
	logger    logging.Logger
	clock     func() time.Time
	startedAt time.Time
}

// New creates the handler set
func New(pipelines *store.PipelineStore, queries *store.QueryStore, sessionManager *sessions.Manager, cat *catalog.Catalog, logger logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Handlers{
		pipelines: pipelines,
		queries:   queries,
		sessions:  sessionManager,
		catalog:   cat,
		logger:    logger.WithFields(logging.String("component", "handlers")),
		clock:     time.Now,
		startedAt: time.Now(),
	}
}

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error" example:"pipeline not found"`
	Type  string `json:"type" example:"not_found"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	message := err.Error()

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		h.logger.WithContext(r.Context()).Error("Request failed", err)
		message = "internal server error"
	}

	writeJSON(w, status, ErrorResponse{Error: message, Type: string(errors.GetType(err))})
}

// MethodNotAllowed answers requests for a known path under a method it does not serve
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed", Type: "method_not_allowed"})
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched when optional is set.
func decodeJSON(r *http.Request, dst interface{}, optional bool) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err == io.EOF && optional {
			return nil
		}
		if err == io.EOF {
			return errors.ValidationError("request body is required")
		}
		return errors.ValidationError(fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}
