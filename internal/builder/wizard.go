package builder

import (
	"strings"

	"pipeline-studio/internal/catalog"
	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/common/validation"
	"pipeline-studio/internal/models"
	"pipeline-studio/internal/schedule"
)

// Outcome is how a wizard session ended
type Outcome string

const (
	OutcomeOpen      Outcome = "open"
	OutcomeSaved     Outcome = "saved"
	OutcomeCancelled Outcome = "cancelled"
)

// Committer receives the finished draft. The pipeline store implements it.
type Committer interface {
	Create(fields models.PipelineFields) models.Pipeline
	Update(id string, fields models.PipelineFields) (models.Pipeline, bool)
}

// Inputs holds text typed into the builder but not yet added
type Inputs struct {
	Query          string `json:"query"`
	TagName        string `json:"tag_name"`
	TagDescription string `json:"tag_description"`
	TagExample     string `json:"tag_example"`
	OtherSource    string `json:"other_source"`
}

// Option configures a Wizard
type Option func(*Wizard)

// WithLogger sets the logger used for accepted and rejected mutations
func WithLogger(logger logging.Logger) Option {
	return func(w *Wizard) {
		w.logger = logger
	}
}

// Wizard drives one create or edit session over a draft it exclusively owns.
// It is not safe for concurrent use.
type Wizard struct {
	catalog *catalog.Catalog
	logger  logging.Logger

	step    Step
	state   State
	inputs  Inputs
	editing string
	outcome Outcome
}

// New opens a wizard in create mode with an empty draft
func New(cat *catalog.Catalog, opts ...Option) *Wizard {
	w := &Wizard{
		catalog: cat,
		logger:  logging.GetGlobalLogger(),
		state:   State{Schedule: schedule.Choice{Kind: schedule.Manual}},
		outcome: OutcomeOpen,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Edit opens a wizard seeded from p. Saving it updates p in place.
//
// Source names are matched to catalog entries by display name; names the
// catalog does not know are kept as free-text sources so they save back unchanged.
func Edit(cat *catalog.Catalog, p models.Pipeline, opts ...Option) *Wizard {
	w := New(cat, opts...)
	w.editing = p.ID
	w.state.Name = p.Name
	w.state.Schedule = schedule.Parse(p.Schedule)
	w.state.Output = p.Output
	w.state.Analyses = NewAnalysisSet(p.Analyses...)

	for _, label := range p.DataSources {
		ref, ok := cat.ByName(label)
		if !ok {
			ref = models.FreeTextSource(label)
		}
		if !w.state.hasSourceName(ref.Name) {
			w.state.Sources = append(w.state.Sources, ref)
		}
	}
	return w
}

// Step returns the current step
func (w *Wizard) Step() Step {
	return w.step
}

// State returns a copy of the draft
func (w *Wizard) State() State {
	return w.state.clone()
}

// Inputs returns the pending input buffers
func (w *Wizard) Inputs() Inputs {
	return w.inputs
}

// EditingID returns the id of the pipeline being edited, or "" in create mode
func (w *Wizard) EditingID() string {
	return w.editing
}

// Outcome returns how the session ended, or OutcomeOpen
func (w *Wizard) Outcome() Outcome {
	return w.outcome
}

// Done reports whether the wizard was saved or cancelled
func (w *Wizard) Done() bool {
	return w.outcome != OutcomeOpen
}

// CanAdvance reports whether the current step's input is present
func (w *Wizard) CanAdvance() bool {
	return !w.Done() && Validate(w.step, &w.state)
}

// Advance moves to the next step when the current one validates
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return w.reject("advance", "step incomplete")
	}
	if w.step.IsLast() {
		return w.reject("advance", "already on last step")
	}
	w.step++
	w.logger.Debug("Builder advanced", logging.String("step", w.step.String()))
	return true
}

// Retreat moves to the previous step; on the first step it cancels the wizard
func (w *Wizard) Retreat() bool {
	if w.Done() {
		return w.reject("retreat", "wizard closed")
	}
	if w.step == StepName {
		return w.Cancel()
	}
	w.step--
	w.logger.Debug("Builder retreated", logging.String("step", w.step.String()))
	return true
}

// Cancel discards the draft. Nothing is committed.
func (w *Wizard) Cancel() bool {
	if w.Done() {
		return w.reject("cancel", "wizard closed")
	}
	w.outcome = OutcomeCancelled
	w.logger.Debug("Builder cancelled", logging.String("editing", w.editing))
	return true
}

// Draft assembles the pipeline draft from the current state.
// Sources become display names and the schedule its display string.
func (w *Wizard) Draft() models.PipelineDraft {
	names := make([]string, len(w.state.Sources))
	for i, ref := range w.state.Sources {
		names[i] = ref.Name
	}
	return models.PipelineDraft{
		Name:        w.state.Name,
		DataSources: names,
		Schedule:    w.state.Schedule.Display(),
		Output:      w.state.Output,
		Analyses:    w.state.Analyses.Items(),
	}
}

// Save commits the draft from the final step. In edit mode it updates the
// original pipeline, otherwise it creates one. The wizard closes on success.
func (w *Wizard) Save(c Committer) (models.Pipeline, bool) {
	if w.Done() {
		return models.Pipeline{}, w.reject("save", "wizard closed")
	}
	if !w.step.IsLast() || !Validate(w.step, &w.state) {
		return models.Pipeline{}, w.reject("save", "final step incomplete")
	}

	draft := w.Draft()
	if err := validation.ValidateStruct(draft); err != nil {
		return models.Pipeline{}, w.reject("save", err.Error())
	}

	var p models.Pipeline
	if w.editing != "" {
		updated, ok := c.Update(w.editing, draft.Fields())
		if !ok {
			return models.Pipeline{}, w.reject("save", "pipeline no longer exists")
		}
		p = updated
	} else {
		p = c.Create(draft.Fields())
	}

	w.outcome = OutcomeSaved
	w.logger.Debug("Builder saved", logging.String("pipeline_id", p.ID))
	return p, true
}

// SetName replaces the pipeline name. Emptiness is checked on advance.
func (w *Wizard) SetName(name string) bool {
	if w.Done() {
		return w.reject("set_name", "wizard closed")
	}
	w.state.Name = name
	return true
}

// SetSchedule replaces the schedule choice. Custom text is kept as typed.
func (w *Wizard) SetSchedule(choice schedule.Choice) bool {
	if w.Done() {
		return w.reject("set_schedule", "wizard closed")
	}
	if _, ok := schedule.ParseKind(string(choice.Kind)); !ok {
		return w.reject("set_schedule", "unknown schedule kind")
	}
	w.state.Schedule = choice
	return true
}

// SetOutput selects an output destination from the catalog
func (w *Wizard) SetOutput(label string) bool {
	if w.Done() {
		return w.reject("set_output", "wizard closed")
	}
	if !w.catalog.HasOutput(label) {
		return w.reject("set_output", "unknown output")
	}
	w.state.Output = label
	return true
}

// SetInputs replaces the pending input buffers
func (w *Wizard) SetInputs(in Inputs) bool {
	if w.Done() {
		return w.reject("set_inputs", "wizard closed")
	}
	w.inputs = in
	return true
}

// ToggleSource selects an enabled catalog source, or deselects any selected source
func (w *Wizard) ToggleSource(id string) bool {
	if w.Done() {
		return w.reject("toggle_source", "wizard closed")
	}
	if i := w.state.sourceIndex(id); i >= 0 {
		w.state.Sources = append(w.state.Sources[:i:i], w.state.Sources[i+1:]...)
		return true
	}

	ref, ok := w.catalog.Lookup(id)
	if !ok {
		return w.reject("toggle_source", "unknown source")
	}
	if !ref.Enabled {
		return w.reject("toggle_source", "source disabled")
	}
	if w.state.hasSourceName(ref.Name) {
		return w.reject("toggle_source", "source already selected")
	}
	w.state.Sources = append(w.state.Sources, ref)
	return true
}

// AddOtherSource adds the pending free-text source and clears the buffer.
// Text naming a catalog source selects that catalog entry instead.
func (w *Wizard) AddOtherSource() bool {
	if w.Done() {
		return w.reject("add_other_source", "wizard closed")
	}
	text := strings.TrimSpace(w.inputs.OtherSource)
	if text == "" {
		return w.reject("add_other_source", "blank source")
	}
	if w.state.hasSourceName(text) {
		return w.reject("add_other_source", "source already selected")
	}

	ref, ok := w.catalog.ByName(text)
	if !ok {
		ref = models.FreeTextSource(text)
	} else if !ref.Enabled {
		return w.reject("add_other_source", "source disabled")
	}
	w.state.Sources = append(w.state.Sources, ref)
	w.inputs.OtherSource = ""
	return true
}

// AddSentiment adds the sentiment analysis
func (w *Wizard) AddSentiment() bool {
	if w.Done() {
		return w.reject("add_sentiment", "wizard closed")
	}
	if !w.state.Analyses.AddSentiment() {
		return w.reject("add_sentiment", "already present")
	}
	return true
}

// AddQuery adds the pending query text and clears the buffer
func (w *Wizard) AddQuery() bool {
	if w.Done() {
		return w.reject("add_query", "wizard closed")
	}
	if !w.state.Analyses.AddQuery(w.inputs.Query) {
		return w.reject("add_query", "blank text or already present")
	}
	w.inputs.Query = ""
	return true
}

// AddAutoTag adds the pending tag definition and clears its buffers
func (w *Wizard) AddAutoTag() bool {
	if w.Done() {
		return w.reject("add_auto_tag", "wizard closed")
	}
	if !w.state.Analyses.AddAutoTag(w.inputs.TagName, w.inputs.TagDescription, w.inputs.TagExample) {
		return w.reject("add_auto_tag", "already present")
	}
	w.inputs.TagName, w.inputs.TagDescription, w.inputs.TagExample = "", "", ""
	return true
}

// RemoveAnalysis removes the analysis at index
func (w *Wizard) RemoveAnalysis(index int) bool {
	if w.Done() {
		return w.reject("remove_analysis", "wizard closed")
	}
	if !w.state.Analyses.RemoveAt(index) {
		return w.reject("remove_analysis", "index out of range")
	}
	return true
}

func (w *Wizard) reject(op, reason string) bool {
	w.logger.Debug("Builder rejected operation",
		logging.String("operation", op),
		logging.String("reason", reason),
		logging.String("step", w.step.String()),
	)
	return false
}
