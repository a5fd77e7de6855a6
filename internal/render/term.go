package render

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/kbase/internal/search"
)

// Marked converts escaped, marked HTML into terminal text, rendering marked
// runs with style.
func Marked(s string, style lipgloss.Style) string {
	return MarkedFunc(s, func(t string) string { return style.Render(t) })
}

// Plain drops the markers and unescapes entities.
func Plain(s string) string {
	return MarkedFunc(s, func(t string) string { return t })
}

// MarkedFunc is Marked with an arbitrary wrapper. Text inside nested markers
// is wrapped like any marked text; a stray close marker is dropped.
func MarkedFunc(s string, wrap func(string) string) string {
	var out, seg strings.Builder
	depth := 0
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		text := html.UnescapeString(seg.String())
		if depth > 0 {
			text = wrap(text)
		}
		out.WriteString(text)
		seg.Reset()
	}

	for len(s) > 0 {
		switch {
		case strings.HasPrefix(s, search.MarkOpen):
			flush()
			depth++
			s = s[len(search.MarkOpen):]
		case strings.HasPrefix(s, search.MarkClose):
			flush()
			if depth > 0 {
				depth--
			}
			s = s[len(search.MarkClose):]
		default:
			i := strings.IndexByte(s[1:], '<')
			if i < 0 {
				seg.WriteString(s)
				s = ""
				continue
			}
			seg.WriteString(s[:i+1])
			s = s[i+1:]
		}
	}
	flush()
	return out.String()
}
