// Package browser holds the application state record and the filtering
// pipeline that turns it into display-ready cards.
package browser

import (
	"fmt"
	"strings"

	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/search"
)

// State is the whole mutable state of one browsing session. It is owned by
// the top-level controller and passed to the pure pipeline functions.
type State struct {
	Library      *kb.Library
	ActiveID     string
	GlobalQuery  string
	SectionQuery string
	DisplayName  string
}

// Card is one rendered item. TitleHTML and ContentHTML are escaped and marked;
// Content is the templated plain text used for copying.
type Card struct {
	Title       string
	Content     string
	TitleHTML   string
	ContentHTML string
	Tags        []string
	Resources   []kb.Resource
}

// Panel is the active section after filtering.
type Panel struct {
	Section kb.Section
	Query   string
	Cards   []Card
	Meta    string
}

// New starts a session on the first section, or none for an empty library.
func New(lib *kb.Library) State {
	s := State{Library: lib}
	if lib != nil && len(lib.Sections) > 0 {
		s.ActiveID = lib.Sections[0].ID
	}
	return s
}

// ActiveSection returns the selected section.
func (s State) ActiveSection() (kb.Section, bool) {
	if s.ActiveID == "" {
		return kb.Section{}, false
	}
	return s.Library.Section(s.ActiveID)
}

// Select activates a section and clears the section query.
func (s *State) Select(id string) error {
	if _, ok := s.Library.Section(id); !ok {
		return fmt.Errorf("unknown section %q", id)
	}
	s.ActiveID = id
	s.SectionQuery = ""
	return nil
}

// ActiveQuery is the global query when set, else the section query.
func (s State) ActiveQuery() string {
	if s.GlobalQuery != "" {
		return s.GlobalQuery
	}
	return s.SectionQuery
}

// SetGlobalQuery replaces the global query.
func (s *State) SetGlobalQuery(q string) {
	s.GlobalQuery = q
}

// SetSectionQuery replaces the section query.
func (s *State) SetSectionQuery(q string) {
	s.SectionQuery = q
}

// ClearGlobal empties the global query.
func (s *State) ClearGlobal() {
	s.GlobalQuery = ""
}

// ClearSection empties the section query.
func (s *State) ClearSection() {
	s.SectionQuery = ""
}

// VisibleItems filters the active section's items with the active query.
func (s State) VisibleItems() []kb.Item {
	items := s.Library.ItemsFor(s.ActiveID)
	q := s.ActiveQuery()
	out := make([]kb.Item, 0, len(items))
	for _, it := range items {
		if search.MatchTokens(q, search.ItemFields(it.Title, it.Content, it.Tags)...) {
			out = append(out, it)
		}
	}
	return out
}

// Panel runs the full pipeline: filter, template, highlight.
func (s State) Panel(tpl search.Templater) Panel {
	section, _ := s.ActiveSection()
	q := s.ActiveQuery()
	visible := s.VisibleItems()

	cards := make([]Card, 0, len(visible))
	for _, it := range visible {
		title := tpl.Apply(it.Title, s.DisplayName)
		content := tpl.Apply(it.Content, s.DisplayName)
		cards = append(cards, Card{
			Title:       title,
			Content:     content,
			TitleHTML:   search.Highlight(title, q),
			ContentHTML: search.Highlight(content, q),
			Tags:        it.Tags,
			Resources:   it.Resources,
		})
	}
	return Panel{
		Section: section,
		Query:   q,
		Cards:   cards,
		Meta:    ResultsMeta(len(cards), q),
	}
}

// ResultsMeta is the line shown above the cards.
func ResultsMeta(n int, query string) string {
	if strings.TrimSpace(query) != "" {
		return fmt.Sprintf("Mostrando %d resultado(s) para: \"%s\"", n, query)
	}
	return fmt.Sprintf("Mostrando %d elemento(s).", n)
}

// SectionCounts maps every section id to its total item count.
func (s State) SectionCounts() map[string]int {
	out := map[string]int{}
	if s.Library == nil {
		return out
	}
	for _, sec := range s.Library.Sections {
		out[sec.ID] = s.Library.Count(sec.ID)
	}
	return out
}

// NavEntry is one line of the section navigation.
type NavEntry struct {
	Section kb.Section
	Count   int
	Active  bool
}

// Nav lists every section with its total item count.
func (s State) Nav() []NavEntry {
	if s.Library == nil {
		return nil
	}
	out := make([]NavEntry, 0, len(s.Library.Sections))
	for _, sec := range s.Library.Sections {
		out = append(out, NavEntry{
			Section: sec,
			Count:   s.Library.Count(sec.ID),
			Active:  sec.ID == s.ActiveID,
		})
	}
	return out
}
