package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"pipeline-studio/internal/common/errors"
	"pipeline-studio/internal/common/pagination"
	"pipeline-studio/internal/common/validation"
	"pipeline-studio/internal/models"
	"pipeline-studio/internal/schedule"
)

// Pipeline management handlers

// PipelineResponse is a pipeline plus its informational next-run label
type PipelineResponse struct {
	models.Pipeline
	NextRun string `json:"next_run,omitempty" example:"in 1.5h"`
}

// PipelinesResponse lists one page of pipelines
type PipelinesResponse struct {
	Pipelines []PipelineResponse `json:"pipelines"`
	Count     int                `json:"count"`
	pagination.Meta
}

// PipelineMutationResponse reports whether a store mutation was applied
type PipelineMutationResponse struct {
	Accepted bool              `json:"accepted"`
	Pipeline *PipelineResponse `json:"pipeline,omitempty"`
}

func (h *Handlers) pipelineResponse(p models.Pipeline) PipelineResponse {
	return PipelineResponse{Pipeline: p, NextRun: schedule.NextRunLabel(p.Schedule, h.clock())}
}

func (h *Handlers) mutationResponse(p models.Pipeline, accepted bool) PipelineMutationResponse {
	resp := PipelineMutationResponse{Accepted: accepted}
	if p.ID != "" {
		pr := h.pipelineResponse(p)
		resp.Pipeline = &pr
	}
	return resp
}

// GetPipelines returns all pipelines
// @Summary List pipelines
// @Description Returns pipelines in insertion order, one page at a time
// @Tags pipelines
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} PipelinesResponse
// @Router /api/pipelines [get]
func (h *Handlers) GetPipelines(w http.ResponseWriter, r *http.Request) {
	pipelines, meta := pagination.Paginate(h.pipelines.List(), pagination.ParseParams(r))

	out := make([]PipelineResponse, len(pipelines))
	for i, p := range pipelines {
		out[i] = h.pipelineResponse(p)
	}
	writeJSON(w, http.StatusOK, PipelinesResponse{Pipelines: out, Count: len(out), Meta: meta})
}

// GetPipeline returns a specific pipeline
// @Summary Get pipeline
// @Description Returns a pipeline by ID
// @Tags pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Success 200 {object} PipelineResponse
// @Failure 404 {object} ErrorResponse "Pipeline not found"
// @Router /api/pipelines/{id} [get]
func (h *Handlers) GetPipeline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, ok := h.pipelines.Get(id)
	if !ok {
		h.writeError(w, r, errors.NotFoundError("pipeline").WithContext("id", id))
		return
	}
	writeJSON(w, http.StatusOK, h.pipelineResponse(p))
}

// CreatePipeline creates a draft pipeline
// @Summary Create pipeline
// @Description Creates a draft pipeline. Unset fields take their defaults (name "New Pipeline", schedule "Manual", output "None").
// @Tags pipelines
// @Accept json
// @Produce json
// @Param pipeline body models.PipelineFields false "Pipeline fields"
// @Success 201 {object} PipelineMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON or fields"
// @Router /api/pipelines [post]
func (h *Handlers) CreatePipeline(w http.ResponseWriter, r *http.Request) {
	var fields models.PipelineFields
	if err := decodeJSON(r, &fields, true); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	p := h.pipelines.Create(fields)
	writeJSON(w, http.StatusCreated, h.mutationResponse(p, true))
}

// UpdatePipeline merges fields into a pipeline
// @Summary Update pipeline
// @Description Merges the supplied fields over the pipeline. An unknown ID is reported as not accepted.
// @Tags pipelines
// @Accept json
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param pipeline body models.PipelineFields true "Fields to change"
// @Success 200 {object} PipelineMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON or fields"
// @Router /api/pipelines/{id} [put]
func (h *Handlers) UpdatePipeline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var fields models.PipelineFields
	if err := decodeJSON(r, &fields, false); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := validation.ValidateStruct(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	p, ok := h.pipelines.Update(id, fields)
	writeJSON(w, http.StatusOK, h.mutationResponse(p, ok))
}

// DeletePipeline removes a pipeline
// @Summary Delete pipeline
// @Description Deletes a pipeline. An unknown ID is reported as not accepted.
// @Tags pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Success 200 {object} PipelineMutationResponse
// @Router /api/pipelines/{id} [delete]
func (h *Handlers) DeletePipeline(w http.ResponseWriter, r *http.Request) {
	ok := h.pipelines.Delete(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, PipelineMutationResponse{Accepted: ok})
}

// TogglePipeline flips a pipeline between active and paused
// @Summary Toggle pipeline status
// @Description Flips active to paused and back. Drafts and unknown IDs are reported as not accepted.
// @Tags pipelines
// @Produce json
// @Param id path string true "Pipeline ID"
// @Success 200 {object} PipelineMutationResponse
// @Router /api/pipelines/{id}/toggle [post]
func (h *Handlers) TogglePipeline(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pipelines.ToggleStatus(mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, h.mutationResponse(p, ok))
}
