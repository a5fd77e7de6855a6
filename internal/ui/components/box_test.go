package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 110, boxWidth(200))
	assert.Equal(t, 85, boxWidth(100))
	assert.Equal(t, 0, boxWidth(0))
}

func TestBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox("Pagos", "line", 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestBoxesFitTheTerminalIncludingBorders(t *testing.T) {
	for _, width := range []int{30, 60, 100, 200} {
		want := boxWidth(width)
		if want > width {
			want = width
		}
		for _, out := range []string{
			TitledBox("Ayuda", "contenido", width),
			ErrorBox("Error", "mensaje", width),
		} {
			for _, line := range strings.Split(out, "\n") {
				assert.Equal(t, want, lipgloss.Width(line), "width %d", width)
			}
		}
	}
}

func TestBoxContentWidthMatchesRenderedBox(t *testing.T) {
	inner := BoxContentWidth(100)
	out := TitledBox("x", strings.Repeat("a", inner), 100)
	assert.Len(t, strings.Split(out, "\n"), 5)
	assert.Equal(t, 0, BoxContentWidth(0))
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("Mi título", "Contenido", 80)
	assert.Contains(t, out, "Mi título")
	assert.Contains(t, TitledBox("", "Contenido", 80), "Contenido")
}

func TestFixedBoxHasExactWidth(t *testing.T) {
	out := FixedBox("hola", 30, true)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	out := ErrorBox("Error", "Algo falló", 80)
	assert.Contains(t, out, "Algo falló")
}

func TestClampTextWidthEllipsis(t *testing.T) {
	assert.Equal(t, "hola", ClampTextWidthEllipsis("hola", 10))
	assert.Equal(t, "hol…", ClampTextWidthEllipsis("hola mundo", 4))
	assert.Equal(t, "sin…", ClampTextWidthEllipsis("sin\nsalto", 4))
	assert.Equal(t, "x", ClampTextWidthEllipsis("x", 0))
}

func TestWrapBreaksLongLines(t *testing.T) {
	out := Wrap("uno dos tres cuatro cinco", 10)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 10)
	}
	assert.Equal(t, "x", Wrap("x", 0))
}

func TestChipsSkipBlankTags(t *testing.T) {
	out := SanitizeText(Chips([]string{"pago", " ", "envío"}))
	assert.Contains(t, out, "pago")
	assert.Contains(t, out, "envío")
	assert.Equal(t, "", Chips(nil))
}

func TestInfoRowSanitizesLabelAndValue(t *testing.T) {
	out := InfoRow("na\u202eme\x1b]0;evil\x07", "va\x1b[2Jlu\u202ee")
	assert.NotContains(t, out, "\u202e")
	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "\x1b[2J")
	assert.Contains(t, SanitizeText(out), "name: value")
}

func TestIndentPreservesLineCountAndAddsPadding(t *testing.T) {
	lines := strings.Split(Indent("a\nb\nc", 2), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "))
	}
}
