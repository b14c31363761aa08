package builder

import (
	"strings"

	"pipeline-studio/internal/models"
)

// AnalysisSet is an ordered list of analyses holding at most one entry per kind.
// The zero value is empty and ready to use.
type AnalysisSet struct {
	items []models.AnalysisConfig
}

// NewAnalysisSet builds a set from items in order. Later entries of a kind already present are dropped.
func NewAnalysisSet(items ...models.AnalysisConfig) AnalysisSet {
	var s AnalysisSet
	for _, item := range items {
		if !s.Has(item.Kind) {
			s.items = append(s.items, item)
		}
	}
	return s
}

// Len returns the number of entries
func (s AnalysisSet) Len() int {
	return len(s.items)
}

// Has reports whether an entry of kind is present
func (s AnalysisSet) Has(kind models.AnalysisKind) bool {
	for _, item := range s.items {
		if item.Kind == kind {
			return true
		}
	}
	return false
}

// Items returns a copy of the entries in insertion order
func (s AnalysisSet) Items() []models.AnalysisConfig {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]models.AnalysisConfig, len(s.items))
	copy(out, s.items)
	return out
}

// AddSentiment appends a sentiment entry unless one exists
func (s *AnalysisSet) AddSentiment() bool {
	return s.add(models.SentimentAnalysis())
}

// AddQuery appends a query entry unless one exists or text is blank
func (s *AnalysisSet) AddQuery(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return s.add(models.QueryAnalysis(text))
}

// AddAutoTag appends an auto-tag entry unless one exists. Blank fields take the documented defaults.
func (s *AnalysisSet) AddAutoTag(name, description, example string) bool {
	return s.add(models.AutoTagAnalysis(name, description, example))
}

// RemoveAt deletes the entry at index. Out-of-range indexes are rejected.
func (s *AnalysisSet) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = append(s.items[:index:index], s.items[index+1:]...)
	return true
}

func (s *AnalysisSet) add(item models.AnalysisConfig) bool {
	if s.Has(item.Kind) {
		return false
	}
	s.items = append(s.items, item)
	return true
}
