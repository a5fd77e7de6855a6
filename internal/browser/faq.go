package browser

import (
	"strings"

	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/search"
)

// FAQRow is the display state of one FAQ entry.
type FAQRow struct {
	Entry     kb.FAQEntry
	Visible   bool
	Open      bool
	Matched   bool
	TitleHTML string
	BodyHTML  string
}

// FAQ is the accordion variant: one search field, rows forced open on match.
// Entries keep their original text so marks are always derived fresh.
type FAQ struct {
	entries  []kb.FAQEntry
	expander search.Expander
	query    string
	terms    []string
	toggled  map[int]bool
}

// NewFAQ builds the accordion over entries.
func NewFAQ(entries []kb.FAQEntry, expander search.Expander) *FAQ {
	return &FAQ{
		entries:  entries,
		expander: expander,
		toggled:  map[int]bool{},
	}
}

// Query returns the current search text.
func (f *FAQ) Query() string {
	return f.query
}

// Terms returns the expanded search terms, nil for a blank query.
func (f *FAQ) Terms() []string {
	return f.terms
}

// Search replaces the query. Every row collapses; matches reopen on Rows.
func (f *FAQ) Search(query string) {
	f.query = query
	f.toggled = map[int]bool{}
	nq := strings.TrimSpace(search.Normalize(query))
	if nq == "" {
		f.terms = nil
		return
	}
	f.terms = f.expander.Expand(nq)
}

// Toggle opens or closes a row. It only works while the query is blank; with
// a query, visibility and openness follow the match.
func (f *FAQ) Toggle(i int) bool {
	if f.terms != nil || i < 0 || i >= len(f.entries) {
		return false
	}
	f.toggled[i] = !f.toggled[i]
	return true
}

// Rows computes the display state of every entry.
func (f *FAQ) Rows() []FAQRow {
	rows := make([]FAQRow, len(f.entries))
	for i, e := range f.entries {
		row := FAQRow{Entry: e}
		switch {
		case f.terms == nil:
			row.Visible = true
			row.Open = f.toggled[i]
			row.TitleHTML = search.EscapeHTML(e.Title)
			row.BodyHTML = search.EscapeHTML(e.Body)
		case search.MatchPhrase(f.terms, e.Title, e.Body):
			row.Visible = true
			row.Open = true
			row.Matched = true
			row.TitleHTML = search.HighlightTerms(e.Title, f.terms)
			row.BodyHTML = search.HighlightTerms(e.Body, f.terms)
		}
		rows[i] = row
	}
	return rows
}

// VisibleCount counts rows currently shown.
func (f *FAQ) VisibleCount() int {
	n := 0
	for _, r := range f.Rows() {
		if r.Visible {
			n++
		}
	}
	return n
}
