package models

import (
	"time"
)

// PipelineStatus is the lifecycle state of a committed pipeline
type PipelineStatus string

const (
	StatusActive PipelineStatus = "active"
	StatusPaused PipelineStatus = "paused"
	StatusDraft  PipelineStatus = "draft"
)

// AnalysisType tags which fixture payload a pipeline carries
type AnalysisType string

const (
	AnalysisTypeAutoTagging AnalysisType = "Auto-tagging"
	AnalysisTypeQueries     AnalysisType = "Queries"
)

// Defaults applied by the store to fields a create request leaves unset
const (
	DefaultPipelineName = "New Pipeline"
	DefaultSchedule     = "Manual"
	DefaultOutput       = "None"
)

// Pipeline is a committed pipeline configuration held by the store
type Pipeline struct {
	ID           string           `json:"id" example:"01JD3XK5V8T9ZQ2M4N6P8R0S2T"`
	Name         string           `json:"name" example:"Reddit Sentiment Analysis"`
	DataSources  []string         `json:"data_sources" example:"Reddit"`
	Schedule     string           `json:"schedule" example:"Daily at 9:00 AM"`
	Output       string           `json:"output" example:"Google Sheets"`
	Status       PipelineStatus   `json:"status" enums:"active,paused,draft"`
	LastRun      string           `json:"last_run,omitempty" example:"2 hours ago"`
	AnalysisType AnalysisType     `json:"analysis_type,omitempty" enums:"Auto-tagging,Queries"`
	Analyses     []AnalysisConfig `json:"analyses,omitempty"`
	ChartData    []ChartPoint     `json:"chart_data,omitempty"`
	QueryResults []QueryResult    `json:"query_results,omitempty"`
}

// Clone returns a deep copy so callers cannot alias the store's slices
func (p Pipeline) Clone() Pipeline {
	out := p
	out.DataSources = cloneSlice(p.DataSources)
	out.Analyses = cloneSlice(p.Analyses)
	out.ChartData = cloneSlice(p.ChartData)
	out.QueryResults = cloneSlice(p.QueryResults)
	return out
}

// ChartPoint is one point of an auto-tagging trend chart
type ChartPoint struct {
	Name  string `json:"name" example:"Mon"`
	Value int    `json:"value" example:"45"`
}

// QueryResult is one answer produced by a query pipeline run
type QueryResult struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// PipelineFields is a partial pipeline. Nil fields are left unset on create
// and untouched on update.
type PipelineFields struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	DataSources []string         `json:"data_sources,omitempty" validate:"omitempty,unique,dive,trimmed_required"`
	Schedule    *string          `json:"schedule,omitempty" validate:"omitempty,max=200"`
	Output      *string          `json:"output,omitempty" validate:"omitempty,max=200"`
	Analyses    []AnalysisConfig `json:"analyses,omitempty" validate:"omitempty,unique=Kind,dive"`
}

// PipelineDraft is the finished output of the builder wizard
type PipelineDraft struct {
	Name        string           `json:"name" validate:"trimmed_required"`
	DataSources []string         `json:"data_sources" validate:"min=1,unique,dive,trimmed_required"`
	Schedule    string           `json:"schedule"`
	Output      string           `json:"output" validate:"trimmed_required"`
	Analyses    []AnalysisConfig `json:"analyses" validate:"min=1,unique=Kind,dive"`
}

// Fields converts the draft into the partial form the store accepts
func (d PipelineDraft) Fields() PipelineFields {
	name, schedule, output := d.Name, d.Schedule, d.Output
	return PipelineFields{
		Name:        &name,
		DataSources: cloneSlice(d.DataSources),
		Schedule:    &schedule,
		Output:      &output,
		Analyses:    cloneSlice(d.Analyses),
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
