package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/search"
	"github.com/gravitrone/kbase/internal/ui/components"
)

var testEntries = []kb.FAQEntry{
	{Title: "¿Cuánto tarda el envío?", Body: "La entrega tarda 48h."},
	{Title: "Olvidé mi contraseña", Body: "Usa la opción de recuperar clave."},
}

func newTestFAQ() FAQModel {
	m := NewFAQModel(search.DefaultTable().Expander())
	m = m.resize(120, 60)
	return m.withEntries(testEntries, nil)
}

func faqKeys(m FAQModel, msgs ...tea.KeyMsg) FAQModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestFAQModelShowsAllCollapsed(t *testing.T) {
	m := newTestFAQ()

	require.True(t, m.typing())
	assert.Len(t, m.visible, 2)
	out := components.SanitizeText(m.View())
	assert.Contains(t, out, "2 pregunta(s)")
	assert.Contains(t, out, "Olvidé mi contraseña")
	assert.NotContains(t, out, "48h")
}

func TestFAQModelSearchOpensMatches(t *testing.T) {
	m := newTestFAQ()
	for _, r := range "entrega" {
		m = faqKeys(m, runes(string(r)))
	}

	require.Equal(t, []int{0}, m.visible)
	out := components.SanitizeText(m.View())
	assert.Contains(t, out, "1 pregunta(s)")
	assert.Contains(t, out, "48h")
	assert.NotContains(t, out, "contraseña")

	m = faqKeys(m, keyOf(tea.KeyCtrlU))
	assert.Len(t, m.visible, 2)
	assert.NotContains(t, components.SanitizeText(m.View()), "48h")
}

func TestFAQModelToggleWithoutQuery(t *testing.T) {
	m := newTestFAQ()
	m = faqKeys(m, keyOf(tea.KeyEnter)) // leave the search field
	require.False(t, m.typing())

	m = faqKeys(m, keyOf(tea.KeyDown), keyOf(tea.KeyEnter))
	assert.Contains(t, components.SanitizeText(m.View()), "recuperar clave")

	m = faqKeys(m, runes(" "))
	assert.NotContains(t, components.SanitizeText(m.View()), "recuperar clave")

	m = faqKeys(m, keyOf(tea.KeyUp), keyOf(tea.KeyUp))
	assert.True(t, m.typing())
}

func TestFAQModelLoadError(t *testing.T) {
	m := NewFAQModel(search.DefaultTable().Expander())
	assert.Contains(t, components.SanitizeText(m.View()), "Cargando preguntas")

	m = m.withEntries(nil, errBoom)
	out := components.SanitizeText(m.View())
	assert.Contains(t, out, "Error cargando las preguntas")
	assert.Contains(t, out, "boom")

	m = faqKeys(m, keyOf(tea.KeyEnter), keyOf(tea.KeyEnter))
	assert.Empty(t, m.visible)
}

func TestFAQModelInputShowsPlaceholder(t *testing.T) {
	m := newTestFAQ()
	assert.Contains(t, components.SanitizeText(m.View()), "Buscar pregunta…")

	m = NewFAQModel(search.DefaultTable().Expander())
	assert.Contains(t, components.SanitizeText(m.View()), "Buscar pregunta…")
}
