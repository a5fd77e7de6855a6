package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize folds case and strips diacritics so "CONTRASEÑA" and "contrasena"
// compare equal. The result stays in decomposed form.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// transform chains are stateful; build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Tokens splits the normalized query on whitespace.
func Tokens(query string) []string {
	return strings.Fields(Normalize(query))
}
