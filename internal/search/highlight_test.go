package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightLengthFloor(t *testing.T) {
	assert.Equal(t, "xaby", Highlight("xaby", "ab"))
	assert.Equal(t, `x<span class="mark">abc</span>y`, Highlight("xabcy", "abc"))
}

func TestHighlightPreservesOriginalCase(t *testing.T) {
	out := Highlight("Pago con tarjeta", "pago")
	assert.Equal(t, `<span class="mark">Pago</span> con tarjeta`, out)
}

func TestHighlightMarksEveryOccurrence(t *testing.T) {
	out := Highlight("pago PAGO Pago", "pago")
	assert.Equal(t, 3, strings.Count(out, MarkOpen))
}

func TestHighlightEscapesBeforeMarking(t *testing.T) {
	out := Highlight(`<script>alert("x")</script>`, "script")
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "&lt;"+MarkOpen+"script"+MarkClose+"&gt;")
	assert.Contains(t, out, "&quot;x&quot;")
}

func TestHighlightBlankQueryOnlyEscapes(t *testing.T) {
	assert.Equal(t, "a &amp; b", Highlight("a & b", ""))
	assert.Equal(t, "&#039;hi&#039;", Highlight("'hi'", "   "))
}

func TestHighlightOverlappingTokensDoubleWrap(t *testing.T) {
	out := Highlight("banana", "banana ban")
	assert.Equal(t, MarkOpen+MarkOpen+"ban"+MarkClose+"ana"+MarkClose, out)
}

func TestHighlightTreatsTokensAsLiterals(t *testing.T) {
	out := Highlight("costo (aprox.) 1+1", "(aprox.) 1+1")
	assert.Contains(t, out, MarkOpen+"(aprox.)"+MarkClose)
	assert.Contains(t, out, MarkOpen+"1+1"+MarkClose)
}

func TestHighlightTermsHasNoLengthFloor(t *testing.T) {
	out := HighlightTerms("ab cd", []string{"ab"})
	assert.Equal(t, MarkOpen+"ab"+MarkClose+" cd", out)
}

func TestHighlightTermsMatchesLiteralAccents(t *testing.T) {
	out := HighlightTerms("Envío rápido", []string{"envio", "envío"})
	assert.Equal(t, MarkOpen+"Envío"+MarkClose+" rápido", out)
}

func TestHighlightTermsSkipsEmpty(t *testing.T) {
	assert.Equal(t, "texto", HighlightTerms("texto", []string{""}))
}
