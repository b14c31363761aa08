// Package catalog provides the data sources and output destinations the
// builder offers. The built-in table can be replaced by a YAML file.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pipeline-studio/internal/common/errors"
	"pipeline-studio/internal/common/validation"
	"pipeline-studio/internal/models"
)

// Catalog is an immutable, ordered set of sources and outputs
type Catalog struct {
	sources []models.DataSourceRef
	outputs []string
	byID    map[string]int
	byName  map[string]int
}

// File is the on-disk catalog layout
type File struct {
	Sources []models.DataSourceRef `yaml:"sources" json:"sources" validate:"unique=ID,dive"`
	Outputs []string               `yaml:"outputs" json:"outputs" validate:"min=1,unique,dive,trimmed_required"`
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultSources(), defaultOutputs())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

func defaultSources() []models.DataSourceRef {
	connected, disconnected := true, false
	return []models.DataSourceRef{
		{ID: "reddit", Name: "Reddit", Icon: "🔴", Enabled: true, Connected: &connected},
		{ID: "intercom", Name: "Intercom", Icon: "💬", Enabled: true, Connected: &connected},
		{ID: "zendesk", Name: "Zendesk", Icon: "🎫", Enabled: true, Connected: &disconnected},
		{ID: "slack", Name: "Slack", Icon: "💬", Enabled: false},
		{ID: "twitter", Name: "Twitter", Icon: "🐦", Enabled: false},
	}
}

func defaultOutputs() []string {
	return []string{"Google Sheets", "Slack", "Email", "Webhook", "Database", "CSV Export"}
}

// New validates and indexes the given entries
func New(sources []models.DataSourceRef, outputs []string) (*Catalog, error) {
	f := File{Sources: sources, Outputs: outputs}
	if err := validation.ValidateStruct(f); err != nil {
		return nil, err
	}
	for _, s := range sources {
		if s.IsFreeText() {
			return nil, errors.ValidationError("source id uses the free-text prefix").WithContext("id", s.ID)
		}
	}

	c := &Catalog{
		sources: make([]models.DataSourceRef, len(sources)),
		outputs: make([]string, len(outputs)),
		byID:    make(map[string]int, len(sources)),
		byName:  make(map[string]int, len(sources)),
	}
	copy(c.sources, sources)
	copy(c.outputs, outputs)

	for i, s := range c.sources {
		c.byID[s.ID] = i
		// First entry wins when two sources share a display name
		if _, seen := c.byName[s.Name]; !seen {
			c.byName[s.Name] = i
		}
	}
	return c, nil
}

// Parse decodes a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid catalog YAML: %v", err))
	}
	c, err := New(f.Sources, f.Outputs)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid catalog: %v", err))
	}
	return c, nil
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InternalError("failed to read catalog file", err).WithContext("path", path)
	}
	return Parse(data)
}

// Sources returns every source in catalog order
func (c *Catalog) Sources() []models.DataSourceRef {
	out := make([]models.DataSourceRef, len(c.sources))
	copy(out, c.sources)
	return out
}

// Outputs returns every output destination in catalog order
func (c *Catalog) Outputs() []string {
	out := make([]string, len(c.outputs))
	copy(out, c.outputs)
	return out
}

// Lookup finds a source by id
func (c *Catalog) Lookup(id string) (models.DataSourceRef, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.DataSourceRef{}, false
	}
	return c.sources[i], true
}

// ByName finds a source by its display name
func (c *Catalog) ByName(name string) (models.DataSourceRef, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.DataSourceRef{}, false
	}
	return c.sources[i], true
}

// HasOutput reports whether label is a known destination. Matching is exact.
func (c *Catalog) HasOutput(label string) bool {
	if strings.TrimSpace(label) == "" {
		return false
	}
	for _, o := range c.outputs {
		if o == label {
			return true
		}
	}
	return false
}
