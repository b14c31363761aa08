package models

import (
	"fmt"
	"strings"
)

// AnalysisKind identifies one of the three analysis variants
type AnalysisKind string

const (
	AnalysisSentiment AnalysisKind = "sentiment"
	AnalysisQuery     AnalysisKind = "query"
	AnalysisAutoTag   AnalysisKind = "auto-tagging"
)

// Defaults substituted for blank auto-tag fields
const (
	DefaultTagName        = "Onboarding Issue"
	DefaultTagDescription = "Any issues related to users signing up or confusion during the first use, or issues setting up the app"
	DefaultTagExample     = "I couldn't log in, I lost my password, I didn't know where to start, I couldn't set up my first template"
)

// AnalysisKinds lists every kind in display order
var AnalysisKinds = []AnalysisKind{AnalysisSentiment, AnalysisQuery, AnalysisAutoTag}

// ParseAnalysisKind accepts the canonical kind names plus a few spellings used in URLs
func ParseAnalysisKind(s string) (AnalysisKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sentiment":
		return AnalysisSentiment, true
	case "query", "queries":
		return AnalysisQuery, true
	case "auto-tagging", "autotag", "auto-tag", "autotagging":
		return AnalysisAutoTag, true
	default:
		return "", false
	}
}

// AnalysisConfig is one analysis attached to a draft or pipeline.
// Only the fields belonging to Kind are set.
type AnalysisConfig struct {
	Kind           AnalysisKind `json:"type" validate:"required,oneof=sentiment query auto-tagging" enums:"sentiment,query,auto-tagging"`
	Query          string       `json:"query,omitempty" validate:"required_if=Kind query" example:"What do users say about onboarding?"`
	TagName        string       `json:"tag_name,omitempty" validate:"required_if=Kind auto-tagging" example:"Onboarding Issue"`
	TagDescription string       `json:"tag_description,omitempty" validate:"required_if=Kind auto-tagging"`
	TagExample     string       `json:"tag_example,omitempty" validate:"required_if=Kind auto-tagging"`
}

// SentimentAnalysis returns the sentiment variant
func SentimentAnalysis() AnalysisConfig {
	return AnalysisConfig{Kind: AnalysisSentiment}
}

// QueryAnalysis returns the query variant; callers reject blank text
func QueryAnalysis(text string) AnalysisConfig {
	return AnalysisConfig{Kind: AnalysisQuery, Query: text}
}

// AutoTagAnalysis returns the auto-tag variant with each blank field replaced by its default
func AutoTagAnalysis(name, description, example string) AnalysisConfig {
	return AnalysisConfig{
		Kind:           AnalysisAutoTag,
		TagName:        orDefault(name, DefaultTagName),
		TagDescription: orDefault(description, DefaultTagDescription),
		TagExample:     orDefault(example, DefaultTagExample),
	}
}

// Label is the short human-readable form shown in lists
func (a AnalysisConfig) Label() string {
	switch a.Kind {
	case AnalysisSentiment:
		return "Sentiment Analysis"
	case AnalysisQuery:
		return fmt.Sprintf("Query: %s", a.Query)
	case AnalysisAutoTag:
		return fmt.Sprintf("Auto-tag: %s", a.TagName)
	default:
		return string(a.Kind)
	}
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
