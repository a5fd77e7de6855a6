package search

import "strings"

// Templater substitutes placeholder tokens with a display name.
type Templater struct {
	placeholders []string
	filler       string
}

// NewTemplater builds a templater from placeholder tokens and the filler used
// when no name is set.
func NewTemplater(placeholders []string, filler string) Templater {
	return Templater{
		placeholders: append([]string(nil), placeholders...),
		filler:       filler,
	}
}

// Apply replaces every placeholder occurrence with the trimmed display name,
// or with the filler when the name is blank.
func (t Templater) Apply(text, displayName string) string {
	if text == "" {
		return ""
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = t.filler
	}
	for _, p := range t.placeholders {
		if p == "" {
			continue
		}
		text = strings.ReplaceAll(text, p, name)
	}
	return text
}

// Placeholders returns a copy of the configured tokens.
func (t Templater) Placeholders() []string {
	return append([]string(nil), t.placeholders...)
}
