package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/kbase/internal/browser"
	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/search"
	"github.com/gravitrone/kbase/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabBrowse = 0
	tabFAQ    = 1
	tabCount  = 2
)

var tabNames = []string{"Browse", "FAQ"}

const (
	loadTimeout = 60 * time.Second
	// nameDialogWidth is the content width of components.InputDialog.
	nameDialogWidth = 44
)

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}
type libraryLoadedMsg struct{ lib *kb.Library }

type appToast struct {
	level string
	text  string
}

// Options wires the app to its data and side effects.
type Options struct {
	Loader      *kb.Loader
	FAQFile     string
	Table       search.Table
	Names       browser.NameStore
	DisplayName string
	Clipboard   Copier
	Opener      Opener
	DownloadDir string
	Logger      *zap.Logger
}

// --- App Model ---

// App is the root TUI model that routes between tabs and dialogs.
type App struct {
	loader  *kb.Loader
	faqFile string
	logger  *zap.Logger
	fx      *effects

	tab      int
	width    int
	height   int
	loading  bool
	loadErr  string
	helpOpen bool
	toast    *appToast

	name      *browser.NameFlow
	nameOpen  bool
	nameInput textinput.Model
	preview   *kb.Resource

	browse BrowseModel
	faq    FAQModel
}

// NewApp creates the root application model.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var src kb.Source
	if opts.Loader != nil {
		src = opts.Loader.Source()
	}
	fx := &effects{
		clip:        opts.Clipboard,
		src:         src,
		downloadDir: opts.DownloadDir,
		open:        opts.Opener,
		logger:      logger,
	}
	return App{
		loader:  opts.Loader,
		faqFile: opts.FAQFile,
		logger:  logger,
		fx:      fx,
		tab:     tabBrowse,
		loading: true,
		name:    browser.NewNameFlow(opts.Names, opts.DisplayName),
		browse:  NewBrowseModel(opts.Table.Templater(), fx),
		faq:     NewFAQModel(opts.Table.Expander()),
	}
}

// Init loads the library. The FAQ follows once the library is in, so fetches
// stay sequential.
func (a App) Init() tea.Cmd {
	return a.loadLibraryCmd()
}

func (a App) loadLibraryCmd() tea.Cmd {
	loader := a.loader
	return func() tea.Msg {
		if loader == nil {
			return errMsg{err: fmt.Errorf("no data source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		lib, err := loader.Load(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return libraryLoadedMsg{lib: lib}
	}
}

func (a App) loadFAQCmd() tea.Cmd {
	loader, file := a.loader, a.faqFile
	return func() tea.Msg {
		if loader == nil {
			return faqLoadedMsg{err: fmt.Errorf("no data source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		entries, err := loader.LoadFAQ(ctx, file)
		return faqLoadedMsg{entries: entries, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browse = a.browse.resize(msg.Width, msg.Height)
		a.faq = a.faq.resize(msg.Width, msg.Height)
		return a, nil

	case errMsg:
		a.loading = false
		a.loadErr = msg.err.Error()
		a.logger.Error("load failed", zap.Error(msg.err))
		return a, nil
	case libraryLoadedMsg:
		a.loading = false
		a.browse = a.browse.withLibrary(msg.lib, a.name.Name())
		if a.name.NeedsPrompt() {
			var focus tea.Cmd
			a, focus = a.openNameDialog(false)
			return a, tea.Batch(a.loadFAQCmd(), focus)
		}
		return a, a.loadFAQCmd()
	case faqLoadedMsg:
		if msg.err != nil {
			a.logger.Warn("faq load failed", zap.Error(msg.err))
		}
		a.faq = a.faq.withEntries(msg.entries, msg.err)
		return a, nil
	case previewMsg:
		res := msg.res
		a.preview = &res
		return a, nil
	case copiedMsg:
		if msg.err != nil {
			return a, a.setToast("warning", "⚠️ No se pudo")
		}
		if msg.link {
			return a, a.setToast("success", "✅ Link copiado")
		}
		return a, a.setToast("success", "✅ Copiado")
	case downloadedMsg:
		if msg.err != nil {
			return a, a.setToast("error", "⚠️ No se pudo descargar: "+msg.err.Error())
		}
		return a, a.setToast("success", "⬇ Guardado en "+msg.path)
	case openedMsg:
		if msg.err != nil {
			return a, a.setToast("error", "⚠️ No se pudo abrir: "+msg.err.Error())
		}
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// A failed load leaves nothing to interact with.
		if a.loadErr != "" || a.loading {
			if isQuit(msg) || isBack(msg) {
				return a, tea.Quit
			}
			return a, nil
		}
		if a.nameOpen {
			return a.updateNameDialog(msg)
		}
		if a.preview != nil {
			return a.updatePreview(msg)
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}

		if !a.typing() {
			switch {
			case isQuit(msg):
				return a, tea.Quit
			case isKey(msg, "?"):
				a.helpOpen = true
				return a, nil
			case isKey(msg, "n"):
				return a.openNameDialog(true)
			case isKey(msg, "left"):
				return a.switchTab((a.tab - 1 + tabCount) % tabCount)
			case isKey(msg, "right"):
				return a.switchTab((a.tab + 1) % tabCount)
			}
			if idx, ok := tabIndexForKey(msg.String()); ok {
				return a.switchTab(idx)
			}
		}
	}

	// Delegate to active tab
	var cmd tea.Cmd
	switch a.tab {
	case tabBrowse:
		a.browse, cmd = a.browse.Update(msg)
	case tabFAQ:
		a.faq, cmd = a.faq.Update(msg)
	}
	return a, cmd
}

func (a App) typing() bool {
	switch a.tab {
	case tabBrowse:
		return a.browse.typing()
	case tabFAQ:
		return a.faq.typing()
	}
	return false
}

func (a App) switchTab(tab int) (App, tea.Cmd) {
	a.tab = tab
	return a, nil
}

// --- Name Dialog ---

func (a App) openNameDialog(prefill bool) (App, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "Tu nombre"
	ti.Prompt = "> "
	ti.CharLimit = 60
	setInputWidth(&ti, nameDialogWidth)
	if prefill {
		ti.SetValue(a.name.Name())
		ti.CursorEnd()
	}
	a.nameInput = ti
	a.nameOpen = true
	return a, a.nameInput.Focus()
}

func (a App) updateNameDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case isEnter(msg):
		err = a.name.Confirm(a.nameInput.Value())
	case isBack(msg):
		err = a.name.Skip()
	default:
		var cmd tea.Cmd
		a.nameInput, cmd = a.nameInput.Update(msg)
		return a, cmd
	}

	a.nameOpen = false
	a.nameInput.Blur()
	a.browse = a.browse.withName(a.name.Name())
	if err != nil {
		a.logger.Error("save display name failed", zap.Error(err))
		return a, a.setToast("error", "No se pudo guardar el nombre: "+err.Error())
	}
	return a, nil
}

func (a App) renderNameDialog() string {
	return components.InputDialog(
		"¿Cómo te llamas?",
		"Se usa para completar los guiones.",
		a.nameInput.View(),
		"enter: guardar | esc: omitir",
	)
}

// --- Preview Dialog ---

func (a App) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := *a.preview
	switch {
	case isBack(msg), isEnter(msg), isKey(msg, "p", "q"):
		a.preview = nil
	case isKey(msg, "o"):
		return a, a.fx.openCmd(res)
	case isKey(msg, "d"):
		if res.Path != "" {
			return a, a.fx.downloadCmd(res)
		}
	case isKey(msg, "l"):
		if res.Path != "" {
			return a, a.fx.copyCmd(a.fx.link(res), true)
		}
	}
	return a, nil
}

// --- View ---

func (a App) View() string {
	if a.loadErr != "" {
		box := components.ErrorBox("Error cargando los datos…", a.loadErr, a.width)
		hints := components.StatusBar(components.Hints("q", "Salir"), a.width)
		return "\n" + centerBlockUniform(box, a.width) + "\n\n" + hints
	}

	banner := centerBlockUniform(RenderBanner(a.height), a.width)
	header := centerBlockUniform(a.renderTabs()+"   "+a.renderNameChip(), a.width)

	var content string
	switch {
	case a.loading:
		content = MutedStyle.Render("Cargando datos…")
	case a.tab == tabFAQ:
		content = a.faq.View()
	default:
		content = a.browse.View()
	}

	switch {
	case a.nameOpen:
		content = a.renderNameDialog()
	case a.preview != nil:
		content = renderPreview(*a.preview, a.fx.link(*a.preview), a.width)
	case a.helpOpen:
		content = a.renderHelp()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s%s", banner, header, content, hints, feedback)
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.tab {
			segments = append(segments, TabActiveStyle.Render(name))
		} else {
			segments = append(segments, TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) renderNameChip() string {
	return MutedStyle.Render("Asesor/a: ") + AccentStyle.Render(components.SanitizeOneLine(a.name.Label()))
}

func (a App) statusHints() []string {
	switch {
	case a.loading:
		return components.Hints("q", "Salir")
	case a.nameOpen:
		return components.Hints("enter", "Guardar", "esc", "Omitir")
	case a.preview != nil:
		return components.Hints("o", "Abrir", "d", "Descargar", "l", "Copiar link", "esc", "Cerrar")
	case a.helpOpen:
		return components.Hints("esc", "Cerrar")
	}
	base := components.Hints("←/→", "Pestañas", "n", "Nombre", "?", "Ayuda", "q", "Salir")
	if a.typing() {
		base = components.Hints("ctrl+c", "Salir")
	}
	switch a.tab {
	case tabFAQ:
		return append(a.faq.hints(), base...)
	default:
		return append(a.browse.hints(), base...)
	}
}

func (a App) renderHelp() string {
	hints := a.statusHints()
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, MutedStyle.Render("esc para cerrar"), "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	return components.Indent(components.TitledBox("Ayuda", strings.Join(lines, "\n"), a.width), 1)
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	switch a.toast.level {
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	case "warning":
		return components.TitledBox("Aviso", WarningStyle.Render(a.toast.text), a.width)
	case "success":
		return components.TitledBox("Listo", SuccessStyle.Render(a.toast.text), a.width)
	}
	return components.TitledBox("Info", a.toast.text, a.width)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
