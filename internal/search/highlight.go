package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinHighlightLen is the shortest token the main browser marks.
const MinHighlightLen = 3

// Marker wrapped around matched text.
const (
	MarkOpen  = `<span class="mark">`
	MarkClose = `</span>`
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes text so it is never interpreted as markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Highlight escapes text and marks every case-insensitive occurrence of each
// normalized query token. Tokens shorter than MinHighlightLen are matched by
// MatchTokens but never marked here. Tokens are applied one after another,
// so overlapping tokens can wrap the same text twice.
func Highlight(text, query string) string {
	out := EscapeHTML(text)
	for _, tok := range Tokens(query) {
		if utf8.RuneCountInString(tok) < MinHighlightLen {
			continue
		}
		out = mark(out, tok)
	}
	return out
}

// HighlightTerms escapes text and marks every term with no length floor.
// It is the FAQ counterpart of Highlight.
func HighlightTerms(text string, terms []string) string {
	out := EscapeHTML(text)
	for _, term := range terms {
		if term == "" {
			continue
		}
		out = mark(out, term)
	}
	return out
}

func mark(s, literal string) string {
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(literal))
	if err != nil {
		return s
	}
	return re.ReplaceAllStringFunc(s, func(m string) string {
		return MarkOpen + m + MarkClose
	})
}
