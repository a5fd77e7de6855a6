package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/search"
)

const testSections = `[
	{"id": "s1", "title": "Pagos", "desc": "Cobros y devoluciones", "file": "pagos.json"},
	{"id": "s2", "title": "Guiones", "desc": "", "file": "guiones.json"},
]`

const testPagos = `[
	{
		"title": "Pago con tarjeta",
		"content": "Usa el datáfono",
		"tags": ["pago", "tarjeta"],
		"resources": [
			{"type": "image", "title": "POS", "note": "modelo nuevo", "path": "img/pos.png"},
			{"type": "pdf", "title": "Manual", "path": "docs/manual.pdf"},
		],
	},
	{"title": "Transferencia", "content": "Pide el comprobante", "tags": ["banco"]},
]`

const testGuiones = `[{"title": "Saludo", "content": "Hola, soy {{ASESORA}}"}]`

const testFAQ = `[
	{"title": "¿Cuánto tarda el envío?", "body": "La entrega tarda 48h."},
	{"title": "Olvidé mi contraseña", "body": "Usa la opción de recuperar clave."},
]`

func writeTestSite(t *testing.T, withFAQ bool) string {
	t.Helper()
	files := map[string]string{
		"data/sections.json": testSections,
		"data/pagos.json":    testPagos,
		"data/guiones.json":  testGuiones,
		"img/pos.png":        "png-bytes",
	}
	if withFAQ {
		files["data/faq.json"] = testFAQ
	}
	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return root
}

type fakeCopier struct {
	text  string
	calls int
	err   error
}

func (c *fakeCopier) Copy(text string) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type memNames struct {
	saved []string
	err   error
}

func (m *memNames) SaveDisplayName(name string) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, name)
	return nil
}

var errBoom = errors.New("boom")

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// newTestApp builds an app over a fresh site and feeds it the load results.
func newTestApp(t *testing.T, opts Options, withFAQ bool) App {
	t.Helper()
	root := writeTestSite(t, withFAQ)
	if opts.Loader == nil {
		opts.Loader = kb.NewLoader(kb.NewDirSource(root), "", nil)
	}
	if opts.FAQFile == "" {
		opts.FAQFile = kb.DefaultFAQFile
	}
	if opts.Table.Placeholders == nil {
		opts.Table = search.DefaultTable()
	}
	app := NewApp(opts)
	app = update(t, app, tea.WindowSizeMsg{Width: 120, Height: 60})
	app = update(t, app, app.loadLibraryCmd()())
	app = update(t, app, app.loadFAQCmd()())
	return app
}

func update(t *testing.T, app App, msg tea.Msg) App {
	t.Helper()
	model, _ := app.Update(msg)
	out, ok := model.(App)
	require.True(t, ok)
	return out
}

func updateCmd(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	out, ok := model.(App)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, app App, text string) App {
	t.Helper()
	for _, r := range text {
		app = update(t, app, runes(string(r)))
	}
	return app
}
