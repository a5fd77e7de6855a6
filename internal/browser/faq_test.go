package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/search"
)

func testFAQ() *FAQ {
	return NewFAQ([]kb.FAQEntry{
		{Title: "¿Cuánto tarda el envío?", Body: "Entre 3 y 5 días."},
		{Title: "Opciones de entrega", Body: "Retiro en tienda o domicilio."},
		{Title: "Empresa de transporte", Body: "Trabajamos con varias."},
		{Title: "Cambiar contraseña", Body: "Desde tu perfil."},
	}, search.DefaultTable().Expander())
}

func TestFAQEmptyQueryShowsAllCollapsed(t *testing.T) {
	f := testFAQ()
	f.Search("")

	for _, r := range f.Rows() {
		assert.True(t, r.Visible)
		assert.False(t, r.Open)
		assert.False(t, r.Matched)
	}
	assert.Equal(t, 4, f.VisibleCount())
}

func TestFAQSearchExpandsSynonyms(t *testing.T) {
	f := testFAQ()
	f.Search("envio")

	rows := f.Rows()
	for i := 0; i < 3; i++ {
		assert.True(t, rows[i].Visible, "row %d", i)
		assert.True(t, rows[i].Open, "row %d", i)
	}
	assert.False(t, rows[3].Visible)
	assert.False(t, rows[3].Open)

	assert.Contains(t, rows[0].TitleHTML, search.MarkOpen+"envío"+search.MarkClose)
	assert.Contains(t, rows[1].TitleHTML, search.MarkOpen+"entrega"+search.MarkClose)
}

func TestFAQFindsItemBySynonymOnly(t *testing.T) {
	f := NewFAQ([]kb.FAQEntry{{Title: "Olvidé mi clave", Body: ""}}, search.DefaultTable().Expander())
	f.Search("contraseña")

	rows := f.Rows()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Visible)
	assert.Contains(t, rows[0].TitleHTML, search.MarkOpen+"clave"+search.MarkClose)
}

func TestFAQToggleOnlyWithoutQuery(t *testing.T) {
	f := testFAQ()

	assert.True(t, f.Toggle(1))
	assert.True(t, f.Rows()[1].Open)
	assert.True(t, f.Toggle(1))
	assert.False(t, f.Rows()[1].Open)

	f.Search("envio")
	assert.False(t, f.Toggle(3))
	assert.False(t, f.Rows()[3].Visible)

	assert.False(t, f.Toggle(99))
}

func TestFAQSearchResetsToggles(t *testing.T) {
	f := testFAQ()
	f.Toggle(0)
	f.Search("envio")
	f.Search("")
	assert.False(t, f.Rows()[0].Open)
}

func TestFAQRepeatedSearchesNeverNestMarks(t *testing.T) {
	f := testFAQ()
	for i := 0; i < 5; i++ {
		f.Search("envio")
	}
	title := f.Rows()[0].TitleHTML
	assert.Equal(t, 1, strings.Count(title, search.MarkOpen))
	assert.NotContains(t, title, search.MarkOpen+search.MarkOpen)
}

func TestFAQEscapesContent(t *testing.T) {
	f := NewFAQ([]kb.FAQEntry{{Title: "<b>envío</b>", Body: "<script>x</script>"}}, search.DefaultTable().Expander())
	f.Search("")
	row := f.Rows()[0]
	assert.Equal(t, "&lt;b&gt;envío&lt;/b&gt;", row.TitleHTML)

	f.Search("envio")
	row = f.Rows()[0]
	assert.NotContains(t, row.BodyHTML, "<script")
	assert.Contains(t, row.TitleHTML, search.MarkOpen+"envío"+search.MarkClose)
}
