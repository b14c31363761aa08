package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pipeline-studio/internal/builder"
	"pipeline-studio/internal/common/errors"
	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/models"
	"pipeline-studio/internal/schedule"
)

// Builder wizard session handlers

// BuilderState is the client view of one wizard session
type BuilderState struct {
	SessionID       string                 `json:"session_id" example:"3f1c2b9e-7a55-4c1e-9d7a-0b8f6c1e2d3a"`
	Mode            string                 `json:"mode" enums:"create,edit"`
	PipelineID      string                 `json:"pipeline_id,omitempty"`
	Step            int                    `json:"step" example:"0"`
	StepTitle       string                 `json:"step_title" example:"Pipeline Name"`
	StepCount       int                    `json:"step_count" example:"5"`
	CanAdvance      bool                   `json:"can_advance"`
	Outcome         string                 `json:"outcome" enums:"open,saved,cancelled"`
	Schedule        schedule.Choice        `json:"schedule"`
	SelectedSources []models.DataSourceRef `json:"selected_sources"`
	Inputs          builder.Inputs         `json:"inputs"`
	Draft           models.PipelineDraft   `json:"draft"`
}

// BuilderResponse wraps the state after an operation
type BuilderResponse struct {
	Accepted bool              `json:"accepted"`
	State    BuilderState      `json:"state"`
	Pipeline *PipelineResponse `json:"pipeline,omitempty"`
}

// OpenBuilderRequest opens a wizard; a pipeline id selects edit mode
type OpenBuilderRequest struct {
	PipelineID string `json:"pipeline_id,omitempty"`
}

// InputsPatch updates individual input buffers
type InputsPatch struct {
	Query          *string `json:"query,omitempty"`
	TagName        *string `json:"tag_name,omitempty"`
	TagDescription *string `json:"tag_description,omitempty"`
	TagExample     *string `json:"tag_example,omitempty"`
	OtherSource    *string `json:"other_source,omitempty"`
}

// PatchBuilderRequest sets any of the editable wizard fields
type PatchBuilderRequest struct {
	Name     *string          `json:"name,omitempty" example:"Weekly digest"`
	Schedule *schedule.Choice `json:"schedule,omitempty"`
	Output   *string          `json:"output,omitempty" example:"Slack"`
	Inputs   *InputsPatch     `json:"inputs,omitempty"`
}

func (p *InputsPatch) apply(in builder.Inputs) builder.Inputs {
	if p == nil {
		return in
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&in.Query, p.Query)
	set(&in.TagName, p.TagName)
	set(&in.TagDescription, p.TagDescription)
	set(&in.TagExample, p.TagExample)
	set(&in.OtherSource, p.OtherSource)
	return in
}

func builderState(sessionID string, w *builder.Wizard) BuilderState {
	st := w.State()
	mode := "create"
	if w.EditingID() != "" {
		mode = "edit"
	}
	sources := st.Sources
	if sources == nil {
		sources = []models.DataSourceRef{}
	}
	return BuilderState{
		SessionID:       sessionID,
		Mode:            mode,
		PipelineID:      w.EditingID(),
		Step:            int(w.Step()),
		StepTitle:       w.Step().String(),
		StepCount:       builder.StepCount,
		CanAdvance:      w.CanAdvance(),
		Outcome:         string(w.Outcome()),
		Schedule:        st.Schedule,
		SelectedSources: sources,
		Inputs:          w.Inputs(),
		Draft:           w.Draft(),
	}
}

// runBuilder applies op to the session named in the path and writes the resulting state
func (h *Handlers) runBuilder(w http.ResponseWriter, r *http.Request, op func(wz *builder.Wizard) bool) {
	h.runBuilderWith(w, r, op, nil)
}

// runBuilderWith is runBuilder with a hook to decorate the response before it is written
func (h *Handlers) runBuilderWith(w http.ResponseWriter, r *http.Request, op func(wz *builder.Wizard) bool, finish func(resp *BuilderResponse)) {
	sid := mux.Vars(r)["sid"]

	var resp BuilderResponse
	found := h.sessions.Do(sid, func(wz *builder.Wizard) {
		resp.Accepted = op(wz)
		resp.State = builderState(sid, wz)
	})
	if !found {
		h.writeError(w, r, errors.NotFoundError("builder session").WithContext("session_id", sid))
		return
	}

	h.logger.WithContext(logging.ContextWithSessionID(r.Context(), sid)).Debug("Builder operation",
		logging.String("path", r.URL.Path),
		logging.Bool("accepted", resp.Accepted),
		logging.String("step", resp.State.StepTitle),
	)
	if finish != nil {
		finish(&resp)
	}
	writeJSON(w, http.StatusOK, resp)
}

// OpenBuilder opens a wizard session
// @Summary Open builder
// @Description Opens a wizard session in create mode, or in edit mode seeded from an existing pipeline
// @Tags builder
// @Accept json
// @Produce json
// @Param request body OpenBuilderRequest false "Pipeline to edit"
// @Success 201 {object} BuilderResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Pipeline not found"
// @Router /api/builder [post]
func (h *Handlers) OpenBuilder(w http.ResponseWriter, r *http.Request) {
	var req OpenBuilderRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.writeError(w, r, err)
		return
	}

	opts := []builder.Option{builder.WithLogger(h.logger)}
	var wz *builder.Wizard
	if req.PipelineID != "" {
		p, ok := h.pipelines.Get(req.PipelineID)
		if !ok {
			h.writeError(w, r, errors.NotFoundError("pipeline").WithContext("id", req.PipelineID))
			return
		}
		wz = builder.Edit(h.catalog, p, opts...)
	} else {
		wz = builder.New(h.catalog, opts...)
	}

	s := h.sessions.Open(wz)
	writeJSON(w, http.StatusCreated, BuilderResponse{Accepted: true, State: builderState(s.ID, wz)})
}

// GetBuilder returns the state of a wizard session
// @Summary Get builder state
// @Tags builder
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} BuilderResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid} [get]
func (h *Handlers) GetBuilder(w http.ResponseWriter, r *http.Request) {
	h.runBuilder(w, r, func(*builder.Wizard) bool { return true })
}

// PatchBuilder sets name, schedule, output or input buffers
// @Summary Update builder fields
// @Description Applies each supplied field. accepted is false when any of them was rejected.
// @Tags builder
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param request body PatchBuilderRequest true "Fields to set"
// @Success 200 {object} BuilderResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid} [patch]
func (h *Handlers) PatchBuilder(w http.ResponseWriter, r *http.Request) {
	var req PatchBuilderRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.runBuilder(w, r, func(wz *builder.Wizard) bool {
		accepted := !wz.Done()
		if req.Name != nil {
			accepted = wz.SetName(*req.Name) && accepted
		}
		if req.Schedule != nil {
			accepted = wz.SetSchedule(*req.Schedule) && accepted
		}
		if req.Output != nil {
			accepted = wz.SetOutput(*req.Output) && accepted
		}
		if req.Inputs != nil {
			accepted = wz.SetInputs(req.Inputs.apply(wz.Inputs())) && accepted
		}
		return accepted
	})
}

// AdvanceBuilder moves to the next step
// @Summary Advance builder
// @Description Moves to the next step when the current step is complete
// @Tags builder
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} BuilderResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/advance [post]
func (h *Handlers) AdvanceBuilder(w http.ResponseWriter, r *http.Request) {
	h.runBuilder(w, r, (*builder.Wizard).Advance)
}

// RetreatBuilder moves to the previous step
// @Summary Retreat builder
// @Description Moves to the previous step. On the first step this cancels the session.
// @Tags builder
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} BuilderResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/retreat [post]
func (h *Handlers) RetreatBuilder(w http.ResponseWriter, r *http.Request) {
	h.runBuilder(w, r, (*builder.Wizard).Retreat)
}

// CancelBuilder discards the draft and closes the session
// @Summary Cancel builder
// @Tags builder
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} BuilderResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/cancel [post]
func (h *Handlers) CancelBuilder(w http.ResponseWriter, r *http.Request) {
	h.runBuilder(w, r, (*builder.Wizard).Cancel)
}

// SaveBuilder commits the draft and closes the session
// @Summary Save builder
// @Description Creates a pipeline, or updates the edited one, from the final step
// @Tags builder
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} BuilderResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/save [post]
func (h *Handlers) SaveBuilder(w http.ResponseWriter, r *http.Request) {
	var saved *PipelineResponse
	h.runBuilderWith(w, r, func(wz *builder.Wizard) bool {
		p, ok := wz.Save(h.pipelines)
		if ok {
			pr := h.pipelineResponse(p)
			saved = &pr
		}
		return ok
	}, func(resp *BuilderResponse) {
		resp.Pipeline = saved
	})
}

// ToggleBuilderSource selects or deselects a catalog source
// @Summary Toggle source
// @Description Selects an enabled catalog source, or deselects a selected one
// @Tags builder
// @Produce json
// @Param sid path string true "Session ID"
// @Param id path string true "Source ID"
// @Success 200 {object} BuilderResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/sources/{id}/toggle [post]
func (h *Handlers) ToggleBuilderSource(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.runBuilder(w, r, func(wz *builder.Wizard) bool {
		return wz.ToggleSource(id)
	})
}

// OtherSourceRequest carries free-text source input
type OtherSourceRequest struct {
	Name *string `json:"name,omitempty" example:"Discord"`
}

// AddBuilderOtherSource adds a free-text source
// @Summary Add other source
// @Description Adds the free-text source from the body, or from the pending input buffer when the body has none
// @Tags builder
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param request body OtherSourceRequest false "Source name"
// @Success 200 {object} BuilderResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/sources/other [post]
func (h *Handlers) AddBuilderOtherSource(w http.ResponseWriter, r *http.Request) {
	var req OtherSourceRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.runBuilder(w, r, func(wz *builder.Wizard) bool {
		if req.Name != nil {
			in := wz.Inputs()
			in.OtherSource = *req.Name
			if !wz.SetInputs(in) {
				return false
			}
		}
		return wz.AddOtherSource()
	})
}

// AddBuilderAnalysis adds a sentiment, query or auto-tagging analysis
// @Summary Add analysis
// @Description Adds an analysis of the given kind. Text fields come from the body or the pending input buffers.
// @Tags builder
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param kind path string true "Analysis kind" Enums(sentiment, query, auto-tagging)
// @Param request body InputsPatch false "Query or tag text"
// @Success 200 {object} BuilderResponse
// @Failure 400 {object} ErrorResponse "Unknown kind or invalid JSON"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/analyses/{kind} [post]
func (h *Handlers) AddBuilderAnalysis(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseAnalysisKind(mux.Vars(r)["kind"])
	if !ok {
		h.writeError(w, r, errors.ValidationError("analysis kind must be one of: sentiment, query, auto-tagging"))
		return
	}

	var req InputsPatch
	if err := decodeJSON(r, &req, true); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.runBuilder(w, r, func(wz *builder.Wizard) bool {
		if !wz.SetInputs(req.apply(wz.Inputs())) {
			return false
		}
		switch kind {
		case models.AnalysisSentiment:
			return wz.AddSentiment()
		case models.AnalysisQuery:
			return wz.AddQuery()
		default:
			return wz.AddAutoTag()
		}
	})
}

// RemoveBuilderAnalysis removes the analysis at a position
// @Summary Remove analysis
// @Tags builder
// @Produce json
// @Param sid path string true "Session ID"
// @Param index path int true "Position in the analysis list"
// @Success 200 {object} BuilderResponse
// @Failure 400 {object} ErrorResponse "Index is not a number"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /api/builder/{sid}/analyses/{index} [delete]
func (h *Handlers) RemoveBuilderAnalysis(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		h.writeError(w, r, errors.ValidationError("analysis index must be a number"))
		return
	}
	h.runBuilder(w, r, func(wz *builder.Wizard) bool {
		return wz.RemoveAnalysis(index)
	})
}
