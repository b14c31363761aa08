package builder

import (
	"strings"

	"pipeline-studio/internal/models"
	"pipeline-studio/internal/schedule"
)

// State is the in-progress draft held by a wizard
type State struct {
	Name     string
	Sources  []models.DataSourceRef
	Analyses AnalysisSet
	Schedule schedule.Choice
	Output   string
}

// Validate reports whether the input required by step is present in s.
// The schedule step always passes, including a custom schedule with no text.
func Validate(step Step, s *State) bool {
	switch step {
	case StepName:
		return strings.TrimSpace(s.Name) != ""
	case StepSources:
		return len(s.Sources) > 0
	case StepAnalysis:
		return s.Analyses.Len() > 0
	case StepSchedule:
		return true
	case StepOutput:
		return s.Output != ""
	default:
		return false
	}
}

func (s *State) sourceIndex(id string) int {
	for i, ref := range s.Sources {
		if ref.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) hasSourceName(name string) bool {
	for _, ref := range s.Sources {
		if ref.Name == name {
			return true
		}
	}
	return false
}

func (s *State) clone() State {
	out := *s
	out.Sources = append([]models.DataSourceRef(nil), s.Sources...)
	out.Analyses = NewAnalysisSet(s.Analyses.Items()...)
	return out
}
