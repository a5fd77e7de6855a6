package search

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed table.yaml
var defaultTable []byte

// Table is the editable search configuration: synonyms for the FAQ variant
// and the placeholder tokens for templating.
type Table struct {
	Synonyms     []SynonymEntry `yaml:"synonyms"`
	Placeholders []string       `yaml:"placeholders"`
	Filler       string         `yaml:"filler"`
}

// DefaultTable returns the built-in table.
func DefaultTable() Table {
	t, err := ParseTable(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded search table: %v", err))
	}
	return t
}

// ParseTable decodes a YAML table. Missing placeholders or filler fall back to
// the built-in values.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("parse search table: %w", err)
	}
	if len(t.Placeholders) == 0 {
		t.Placeholders = []string{"{{ASESORA}}", "{{ASESOR}}"}
	}
	if t.Filler == "" {
		t.Filler = "_____"
	}
	return t, nil
}

// LoadTable reads a table from path. An empty path yields the default table.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read search table: %w", err)
	}
	return ParseTable(data)
}

// Expander builds the synonym expander for this table.
func (t Table) Expander() Expander {
	return NewExpander(t.Synonyms)
}

// Templater builds the placeholder substituter for this table.
func (t Table) Templater() Templater {
	return NewTemplater(t.Placeholders, t.Filler)
}
