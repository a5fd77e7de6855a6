package search

import "strings"

// SynonymEntry maps a root key to the terms that broaden it.
type SynonymEntry struct {
	Key   string   `yaml:"key"`
	Terms []string `yaml:"terms"`
}

// Expander broadens a FAQ query with synonyms.
type Expander struct {
	entries []SynonymEntry
	keys    []string
}

// NewExpander keeps entries in declaration order. Keys are normalized once so
// "contraseña" and "contrasena" behave the same.
func NewExpander(entries []SynonymEntry) Expander {
	e := Expander{
		entries: make([]SynonymEntry, 0, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for _, entry := range entries {
		key := Normalize(strings.TrimSpace(entry.Key))
		if key == "" {
			continue
		}
		e.entries = append(e.entries, entry)
		e.keys = append(e.keys, key)
	}
	return e
}

// Expand returns term followed by the synonyms of every key contained in the
// normalized term. Lists are concatenated in table order; duplicates stay.
func (e Expander) Expand(term string) []string {
	out := []string{term}
	nt := Normalize(term)
	if nt == "" {
		return out
	}
	for i, key := range e.keys {
		if strings.Contains(nt, key) {
			out = append(out, e.entries[i].Terms...)
		}
	}
	return out
}
