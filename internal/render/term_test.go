package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/kbase/internal/search"
)

func brackets(s string) string { return "[" + s + "]" }

func TestMarkedFuncWrapsMarkedRuns(t *testing.T) {
	in := search.Highlight("Pago con tarjeta", "pago")
	assert.Equal(t, "[Pago] con tarjeta", MarkedFunc(in, brackets))
}

func TestMarkedFuncUnescapes(t *testing.T) {
	in := search.Highlight(`<b>"Tom & Jerry"</b>`, "jerry")
	assert.Equal(t, `<b>"Tom & [Jerry]"</b>`, MarkedFunc(in, brackets))
}

func TestMarkedFuncNested(t *testing.T) {
	in := search.MarkOpen + "a" + search.MarkOpen + "b" + search.MarkClose + "c" + search.MarkClose + "d"
	assert.Equal(t, "[a][b][c]d", MarkedFunc(in, brackets))
}

func TestMarkedFuncStrayClose(t *testing.T) {
	assert.Equal(t, "ab", MarkedFunc("a"+search.MarkClose+"b", brackets))
}

func TestPlain(t *testing.T) {
	in := search.Highlight("Envío & entrega", "envío entrega")
	assert.Equal(t, "Envío & entrega", Plain(in))
	assert.Equal(t, "", Plain(""))
}

func TestMarkedAppliesStyle(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	in := search.Highlight("Pago con tarjeta", "pago")

	out := Marked(in, style)
	assert.Equal(t, style.Render("Pago")+" con tarjeta", out)
	assert.Equal(t, "Pago con tarjeta", ansi.Strip(out))
}
