package search

import "strings"

// MatchTokens reports whether any whitespace token of query occurs in the
// normalized concatenation of fields. A blank query matches everything.
func MatchTokens(query string, fields ...string) bool {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return true
	}
	hay := Normalize(strings.Join(fields, " "))
	for _, t := range tokens {
		if strings.Contains(hay, t) {
			return true
		}
	}
	return false
}

// MatchPhrase reports whether any of terms, normalized, occurs in the
// normalized concatenation of fields. Terms usually come from
// Expander.Expand on the whole query. Empty terms never match.
func MatchPhrase(terms []string, fields ...string) bool {
	hay := Normalize(strings.Join(fields, " "))
	for _, term := range terms {
		t := Normalize(term)
		if t == "" {
			continue
		}
		if strings.Contains(hay, t) {
			return true
		}
	}
	return false
}

// ItemFields returns the searchable text of an item in matcher order:
// title, content, then tags joined by spaces.
func ItemFields(title, content string, tags []string) []string {
	return []string{title, content, strings.Join(tags, " ")}
}
