package models

import "strings"

// FreeTextIDPrefix namespaces the ids of free-text sources away from catalog ids
const FreeTextIDPrefix = "other:"

// DataSourceRef is an entry in the source catalog or a free-text source typed into the builder
type DataSourceRef struct {
	ID        string `json:"id" yaml:"id" validate:"trimmed_required" example:"reddit"`
	Name      string `json:"name" yaml:"name" validate:"trimmed_required" example:"Reddit"`
	Icon      string `json:"icon,omitempty" yaml:"icon" example:"🔴"`
	Enabled   bool   `json:"enabled" yaml:"enabled" example:"true"`
	Connected *bool  `json:"connected,omitempty" yaml:"connected,omitempty" example:"true"`
}

// IsConnected reports whether the source has a live integration. Unknown counts as not connected.
func (r DataSourceRef) IsConnected() bool {
	return r.Connected != nil && *r.Connected
}

// FreeTextSource builds a source from user-typed text. The name is the text and the id is the text under FreeTextIDPrefix.
func FreeTextSource(text string) DataSourceRef {
	return DataSourceRef{ID: FreeTextIDPrefix + text, Name: text, Enabled: true}
}

// IsFreeText reports whether the source was typed in rather than picked from the catalog
func (r DataSourceRef) IsFreeText() bool {
	return strings.HasPrefix(r.ID, FreeTextIDPrefix)
}
