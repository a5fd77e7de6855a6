package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/kbase/internal/browser"
	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/render"
	"github.com/gravitrone/kbase/internal/search"
	"github.com/gravitrone/kbase/internal/ui/components"
)

type browseFocus int

const (
	focusNav browseFocus = iota
	focusGlobal
	focusSection
	focusCards
	focusCount
)

const (
	navWidth       = 30
	stackBelowCols = 80
	defaultWidth   = 100
)

type previewMsg struct{ res kb.Resource }

// BrowseModel is the section browser: navigation, both search fields and the
// filtered cards of the active section.
type BrowseModel struct {
	state    browser.State
	tpl      search.Templater
	fx       *effects
	global   textinput.Model
	section  textinput.Model
	focus    browseFocus
	nav      *components.List
	cards    *components.List
	panel    browser.Panel
	expanded map[int]bool
	resource int
	width    int
	height   int
}

func newSearchInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 200
	ti.Width = 40
	return ti
}

// setInputWidth sizes an input to fill avail columns, prompt and cursor
// included. Without a width the placeholder is cut to its first rune.
func setInputWidth(ti *textinput.Model, avail int) {
	w := avail - lipgloss.Width(ti.Prompt) - 1
	if w < 10 {
		w = 10
	}
	ti.Width = w
}

// NewBrowseModel builds the browse tab.
func NewBrowseModel(tpl search.Templater, fx *effects) BrowseModel {
	return BrowseModel{
		tpl:      tpl,
		fx:       fx,
		global:   newSearchInput("Buscar en todo…"),
		section:  newSearchInput("Buscar en esta sección…"),
		focus:    focusCards,
		nav:      components.NewList(12),
		cards:    components.NewList(6),
		expanded: map[int]bool{},
	}
}

func (m BrowseModel) withLibrary(lib *kb.Library, name string) BrowseModel {
	m.state = browser.New(lib)
	m.state.DisplayName = name
	m.nav.Reset(len(lib.Sections))
	return m.refresh()
}

func (m BrowseModel) withName(name string) BrowseModel {
	m.state.DisplayName = name
	return m.refresh()
}

func (m BrowseModel) resize(width, height int) BrowseModel {
	m.width = width
	m.height = height
	m.cards.SetPageSize((height - 24) / 3)
	m.nav.SetPageSize(height - 20)
	setInputWidth(&m.global, m.viewWidth())
	setInputWidth(&m.section, m.panelWidth()-6)
	return m
}

func (m BrowseModel) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m BrowseModel) stacked() bool {
	return m.viewWidth() < stackBelowCols
}

// panelWidth is the outer width of the cards pane.
func (m BrowseModel) panelWidth() int {
	if m.stacked() {
		return m.viewWidth()
	}
	return m.viewWidth() - navWidth - 1
}

// refresh reruns the pipeline. Like a re-render, it collapses every card.
func (m BrowseModel) refresh() BrowseModel {
	m.panel = m.state.Panel(m.tpl)
	m.cards.Reset(len(m.panel.Cards))
	m.expanded = map[int]bool{}
	m.resource = 0
	return m
}

func (m BrowseModel) typing() bool {
	return m.focus == focusGlobal || m.focus == focusSection
}

func (m BrowseModel) setFocus(f browseFocus) (BrowseModel, tea.Cmd) {
	m.focus = f
	m.global.Blur()
	m.section.Blur()
	switch f {
	case focusGlobal:
		return m, m.global.Focus()
	case focusSection:
		return m, m.section.Focus()
	}
	return m, nil
}

func (m BrowseModel) Update(msg tea.Msg) (BrowseModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		switch m.focus {
		case focusGlobal:
			m.global, cmd = m.global.Update(msg)
		case focusSection:
			m.section, cmd = m.section.Update(msg)
		}
		return m, cmd
	}
	if m.state.Library == nil {
		return m, nil
	}

	switch {
	case isFocusNext(key):
		return m.setFocus((m.focus + 1) % focusCount)
	case isFocusPrev(key):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusGlobal, focusSection:
		return m.updateTyping(key)
	case focusNav:
		return m.updateNav(key)
	}
	return m.updateCards(key)
}

func (m BrowseModel) updateTyping(msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	input := &m.section
	if m.focus == focusGlobal {
		input = &m.global
	}

	switch {
	case isBack(msg), isClear(msg):
		if input.Value() != "" {
			input.Reset()
			return m.syncQueries(), nil
		}
		if isBack(msg) {
			return m.setFocus(focusCards)
		}
		return m, nil
	case isEnter(msg), isDown(msg):
		return m.setFocus(focusCards)
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m.syncQueries(), cmd
}

// syncQueries copies the inputs into the state, refreshing on change.
func (m BrowseModel) syncQueries() BrowseModel {
	g, s := m.global.Value(), m.section.Value()
	if g == m.state.GlobalQuery && s == m.state.SectionQuery {
		return m
	}
	m.state.SetGlobalQuery(g)
	m.state.SetSectionQuery(s)
	return m.refresh()
}

func (m BrowseModel) updateNav(msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	switch {
	case isKey(msg, "/"):
		return m.setFocus(focusGlobal)
	case isUp(msg):
		m.nav.Up()
		return m.selectSection(), nil
	case isDown(msg):
		m.nav.Down()
		return m.selectSection(), nil
	case isEnter(msg):
		return m.setFocus(focusCards)
	}
	return m, nil
}

func (m BrowseModel) selectSection() BrowseModel {
	i := m.nav.Selected()
	if i < 0 || i >= len(m.state.Library.Sections) {
		return m
	}
	id := m.state.Library.Sections[i].ID
	if id == m.state.ActiveID {
		return m
	}
	if err := m.state.Select(id); err != nil {
		return m
	}
	m.section.Reset()
	return m.refresh()
}

func (m BrowseModel) updateCards(msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	switch {
	case isKey(msg, "/"):
		return m.setFocus(focusGlobal)
	case isUp(msg):
		m.cards.Up()
		m.resource = 0
	case isDown(msg):
		m.cards.Down()
		m.resource = 0
	case isEnter(msg):
		if i := m.cards.Selected(); i >= 0 {
			m.expanded[i] = !m.expanded[i]
			m.resource = 0
		}
	case isKey(msg, "c"):
		if card, ok := m.selectedCard(); ok {
			return m, m.fx.copyCmd(card.Content, false)
		}
	case isKey(msg, "]"):
		if card, ok := m.selectedCard(); ok && m.expanded[m.cards.Selected()] && m.resource < len(card.Resources)-1 {
			m.resource++
		}
	case isKey(msg, "["):
		if m.resource > 0 {
			m.resource--
		}
	case isKey(msg, "p"):
		if res, ok := m.selectedResource(); ok {
			return m, func() tea.Msg { return previewMsg{res: res} }
		}
	case isKey(msg, "o"):
		if res, ok := m.selectedResource(); ok {
			return m, m.fx.openCmd(res)
		}
	case isKey(msg, "d"):
		if res, ok := m.selectedResource(); ok && res.Path != "" {
			return m, m.fx.downloadCmd(res)
		}
	case isKey(msg, "l"):
		if res, ok := m.selectedResource(); ok && res.Path != "" {
			return m, m.fx.copyCmd(m.fx.link(res), true)
		}
	}
	return m, nil
}

func (m BrowseModel) selectedCard() (browser.Card, bool) {
	i := m.cards.Selected()
	if i < 0 || i >= len(m.panel.Cards) {
		return browser.Card{}, false
	}
	return m.panel.Cards[i], true
}

// selectedResource is only defined inside an expanded card.
func (m BrowseModel) selectedResource() (kb.Resource, bool) {
	card, ok := m.selectedCard()
	if !ok || !m.expanded[m.cards.Selected()] {
		return kb.Resource{}, false
	}
	if m.resource < 0 || m.resource >= len(card.Resources) {
		return kb.Resource{}, false
	}
	return card.Resources[m.resource], true
}

func (m BrowseModel) hints() []string {
	switch m.focus {
	case focusGlobal, focusSection:
		return components.Hints("esc/ctrl+u", "Limpiar", "enter", "Resultados", "tab", "Foco")
	case focusNav:
		return components.Hints("↑/↓", "Sección", "enter", "Resultados", "tab", "Foco")
	}
	hints := components.Hints("↑/↓", "Mover", "enter", "Abrir", "c", "Copiar", "/", "Buscar", "tab", "Foco")
	if _, ok := m.selectedResource(); ok {
		hints = append(hints, components.Hints("[/]", "Recurso", "p", "Ver", "o", "Abrir", "d", "Descargar", "l", "Link")...)
	}
	return hints
}

func (m BrowseModel) View() string {
	if m.state.Library == nil {
		return MutedStyle.Render("Cargando…")
	}
	width := m.viewWidth()
	panelWidth := m.panelWidth()

	query := m.global.View()
	if m.stacked() {
		nav := components.FixedBox(m.renderNav(width-6), width, m.focus == focusNav)
		panel := components.FixedBox(m.renderPanel(panelWidth-6), panelWidth, m.focus != focusNav)
		return query + "\n\n" + nav + "\n" + panel
	}
	nav := components.FixedBox(m.renderNav(navWidth-6), navWidth, m.focus == focusNav)
	panel := components.FixedBox(m.renderPanel(panelWidth-6), panelWidth, m.focus != focusNav)
	return query + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, nav, " ", panel)
}

func (m BrowseModel) renderNav(inner int) string {
	entries := m.state.Nav()
	start, end := m.nav.Window()
	lines := make([]string, 0, end-start+1)
	lines = append(lines, HeaderStyle.Render("Secciones"))
	for i := start; i < end; i++ {
		e := entries[i]
		badge := BadgeStyle.Render(fmt.Sprintf("%d", e.Count))
		titleWidth := inner - lipgloss.Width(badge) - 3
		title := components.ClampTextWidthEllipsis(e.Section.Title, titleWidth)
		prefix := "  "
		style := NormalStyle
		if e.Active {
			prefix = "▸ "
			style = SelectedStyle
		}
		gap := inner - lipgloss.Width(prefix+title) - lipgloss.Width(badge)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, style.Render(prefix+title)+strings.Repeat(" ", gap)+badge)
	}
	return strings.Join(lines, "\n")
}

func (m BrowseModel) renderPanel(inner int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(components.SanitizeOneLine(m.panel.Section.Title)))
	if desc := components.SanitizeOneLine(m.panel.Section.Desc); desc != "" {
		b.WriteString("\n" + MutedStyle.Render(components.Wrap(desc, inner)))
	}
	b.WriteString("\n\n" + m.section.View())
	b.WriteString("\n" + MutedStyle.Render(components.SanitizeOneLine(m.panel.Meta)))

	start, end := m.cards.Window()
	if start > 0 {
		b.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("  ↑ %d más", start)))
	}
	for i := start; i < end; i++ {
		b.WriteString("\n\n" + m.renderCard(i, inner))
	}
	if rest := len(m.panel.Cards) - end; rest > 0 {
		b.WriteString("\n\n" + MutedStyle.Render(fmt.Sprintf("  ↓ %d más", rest)))
	}
	return b.String()
}

func (m BrowseModel) renderCard(i, inner int) string {
	card := m.panel.Cards[i]
	open := m.expanded[i]
	selected := m.focus == focusCards && m.cards.IsSelected(i)

	marker := "▸ "
	if open {
		marker = "▾ "
	}
	if selected {
		marker = SelectedStyle.Render(marker)
	} else {
		marker = MutedStyle.Render(marker)
	}
	title := render.Marked(components.SanitizeOneLine(card.TitleHTML), MarkStyle)
	lines := []string{marker + components.Wrap(title, inner-2)}
	if chips := components.Chips(card.Tags); chips != "" {
		lines = append(lines, "  "+chips)
	}
	if !open {
		return strings.Join(lines, "\n")
	}

	content := render.Marked(components.SanitizeText(card.ContentHTML), MarkStyle)
	lines = append(lines, "", components.Indent(components.Wrap(content, inner-2), 2))
	for j, res := range card.Resources {
		lines = append(lines, m.renderResource(j, res, inner-2))
	}
	return strings.Join(lines, "\n")
}

var actionKeys = map[string]string{
	render.ActionPreview:  "p",
	render.ActionOpen:     "o",
	render.ActionDownload: "d",
	render.ActionCopyLink: "l",
}

func (m BrowseModel) renderResource(j int, res kb.Resource, inner int) string {
	cursor := "  "
	titleStyle := NormalStyle
	if j == m.resource {
		cursor = SelectedStyle.Render("› ")
		titleStyle = SelectedStyle
	}
	head := cursor + titleStyle.Render(components.ClampTextWidthEllipsis(res.DisplayTitle(), inner-4)) +
		"  " + MutedStyle.Render(components.SanitizeOneLine(render.ResourceMeta(res)))

	actions := render.Actions(res, render.PlainLink)
	labels := make([]string, 0, len(actions))
	for _, a := range actions {
		labels = append(labels, AccentStyle.Render("["+actionKeys[a.Kind]+"]")+" "+a.Label)
	}
	return "\n" + components.Indent(head+"\n  "+strings.Join(labels, "  "), 2)
}
