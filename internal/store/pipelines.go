// Package store holds the committed pipelines and saved queries in memory.
// Nothing is persisted; a restart returns to the seeded fixtures.
package store

import (
	"sync"
	"time"

	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/common/utils"
	"pipeline-studio/internal/models"
)

// PipelineStore is an ordered, in-memory list of pipelines.
// Every method is safe for concurrent use.
type PipelineStore struct {
	mu        sync.RWMutex
	pipelines []models.Pipeline
	newID     utils.IDGenerator
	logger    logging.Logger
}

// Option configures a PipelineStore
type Option func(*PipelineStore)

// WithIDGenerator replaces the ULID generator used for new pipelines
func WithIDGenerator(gen utils.IDGenerator) Option {
	return func(s *PipelineStore) {
		s.newID = gen
	}
}

// WithLogger sets the store logger
func WithLogger(logger logging.Logger) Option {
	return func(s *PipelineStore) {
		s.logger = logger
	}
}

// WithPipelines seeds the store with the given pipelines in order
func WithPipelines(seed ...models.Pipeline) Option {
	return func(s *PipelineStore) {
		for _, p := range seed {
			s.pipelines = append(s.pipelines, p.Clone())
		}
	}
}

// NewPipelineStore creates an empty store unless seeded through WithPipelines
func NewPipelineStore(opts ...Option) *PipelineStore {
	s := &PipelineStore{
		newID:  utils.NewULIDGenerator(time.Now),
		logger: logging.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns copies of all pipelines in insertion order
func (s *PipelineStore) List() []models.Pipeline {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Pipeline, len(s.pipelines))
	for i, p := range s.pipelines {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of pipelines
func (s *PipelineStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pipelines)
}

// Get returns a copy of the pipeline with the given id
func (s *PipelineStore) Get(id string) (models.Pipeline, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Pipeline{}, false
	}
	return s.pipelines[i].Clone(), true
}

// Create appends a draft pipeline built from fields. Unset or empty fields take
// the defaults: name "New Pipeline", no sources, schedule "Manual", output "None".
func (s *PipelineStore) Create(fields models.PipelineFields) models.Pipeline {
	p := models.Pipeline{
		Name:        utils.StringFromPtr(fields.Name, ""),
		DataSources: append([]string{}, fields.DataSources...),
		Schedule:    utils.StringFromPtr(fields.Schedule, ""),
		Output:      utils.StringFromPtr(fields.Output, ""),
		Status:      models.StatusDraft,
		Analyses:    append([]models.AnalysisConfig(nil), fields.Analyses...),
	}
	if p.Name == "" {
		p.Name = models.DefaultPipelineName
	}
	if p.Schedule == "" {
		p.Schedule = models.DefaultSchedule
	}
	if p.Output == "" {
		p.Output = models.DefaultOutput
	}

	s.mu.Lock()
	p.ID = s.newID()
	s.pipelines = append(s.pipelines, p)
	s.mu.Unlock()

	s.logger.Info("Pipeline created",
		logging.String("pipeline_id", p.ID),
		logging.String("name", p.Name),
	)
	return p.Clone()
}

// Update merges the supplied fields over the pipeline with the given id.
// Identity, status and unsupplied fields are preserved. A missing id is rejected.
func (s *PipelineStore) Update(id string, fields models.PipelineFields) (models.Pipeline, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("Pipeline update rejected", logging.String("pipeline_id", id), logging.String("reason", "not found"))
		return models.Pipeline{}, false
	}

	p := &s.pipelines[i]
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.DataSources != nil {
		p.DataSources = append([]string{}, fields.DataSources...)
	}
	if fields.Schedule != nil {
		p.Schedule = *fields.Schedule
	}
	if fields.Output != nil {
		p.Output = *fields.Output
	}
	if fields.Analyses != nil {
		p.Analyses = append([]models.AnalysisConfig{}, fields.Analyses...)
	}
	updated := p.Clone()
	s.mu.Unlock()

	s.logger.Info("Pipeline updated", logging.String("pipeline_id", id))
	return updated, true
}

// Delete removes the pipeline with the given id
func (s *PipelineStore) Delete(id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("Pipeline delete rejected", logging.String("pipeline_id", id), logging.String("reason", "not found"))
		return false
	}
	s.pipelines = append(s.pipelines[:i], s.pipelines[i+1:]...)
	s.mu.Unlock()

	s.logger.Info("Pipeline deleted", logging.String("pipeline_id", id))
	return true
}

// ToggleStatus flips an active pipeline to paused and back. Drafts are left unchanged and rejected.
func (s *PipelineStore) ToggleStatus(id string) (models.Pipeline, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("Pipeline toggle rejected", logging.String("pipeline_id", id), logging.String("reason", "not found"))
		return models.Pipeline{}, false
	}

	p := &s.pipelines[i]
	switch p.Status {
	case models.StatusActive:
		p.Status = models.StatusPaused
	case models.StatusPaused:
		p.Status = models.StatusActive
	default:
		current := p.Clone()
		s.mu.Unlock()
		s.logger.Debug("Pipeline toggle rejected", logging.String("pipeline_id", id), logging.String("reason", "status "+string(current.Status)))
		return current, false
	}
	toggled := p.Clone()
	s.mu.Unlock()

	s.logger.Info("Pipeline status toggled",
		logging.String("pipeline_id", id),
		logging.String("status", string(toggled.Status)),
	)
	return toggled, true
}

func (s *PipelineStore) indexOf(id string) int {
	for i := range s.pipelines {
		if s.pipelines[i].ID == id {
			return i
		}
	}
	return -1
}
