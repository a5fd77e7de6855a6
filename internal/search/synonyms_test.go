package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAlwaysIncludesTerm(t *testing.T) {
	exp := NewExpander(nil)
	assert.Equal(t, []string{"horario"}, exp.Expand("horario"))
	assert.Equal(t, []string{""}, exp.Expand(""))
}

func TestExpandUnionsMatchingKeysInOrder(t *testing.T) {
	exp := NewExpander([]SynonymEntry{
		{Key: "pago", Terms: []string{"abono", "cobro"}},
		{Key: "tarjeta", Terms: []string{"credito"}},
		{Key: "envio", Terms: []string{"entrega"}},
	})

	got := exp.Expand("pago con tarjeta")
	want := []string{"pago con tarjeta", "abono", "cobro", "credito"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Expand mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandKeepsDuplicates(t *testing.T) {
	exp := NewExpander([]SynonymEntry{
		{Key: "clave", Terms: []string{"password"}},
		{Key: "contraseña", Terms: []string{"password"}},
	})
	got := exp.Expand("clave contrasena")
	assert.Equal(t, []string{"clave contrasena", "password", "password"}, got)
}

func TestExpandNormalizesKeys(t *testing.T) {
	exp := DefaultTable().Expander()
	got := exp.Expand(Normalize("Contraseña"))
	assert.Contains(t, got, "clave")
	assert.Contains(t, got, "password")
}

func TestDefaultTableHasPlaceholders(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, []string{"{{ASESORA}}", "{{ASESOR}}"}, table.Placeholders)
	assert.Equal(t, "_____", table.Filler)
	require.NotEmpty(t, table.Synonyms)
	assert.Equal(t, "contraseña", table.Synonyms[0].Key)
}

func TestParseTableFallsBackForMissingFields(t *testing.T) {
	table, err := ParseTable([]byte("synonyms:\n  - key: hola\n    terms: [buenas]\n"))
	require.NoError(t, err)
	assert.Equal(t, "_____", table.Filler)
	assert.Len(t, table.Placeholders, 2)
	assert.Equal(t, []string{"hola", "buenas"}, table.Expander().Expand("hola"))
}

func TestParseTableRejectsBadYAML(t *testing.T) {
	_, err := ParseTable([]byte("synonyms: [:"))
	assert.Error(t, err)
}

func TestLoadTableEmptyPathUsesDefault(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable(), table)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable("/nonexistent/table.yaml")
	assert.Error(t, err)
}
