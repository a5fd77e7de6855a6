package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/kbase/internal/browser"
	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/render"
	"github.com/gravitrone/kbase/internal/search"
	"github.com/gravitrone/kbase/internal/ui/components"
)

type faqLoadedMsg struct {
	entries []kb.FAQEntry
	err     error
}

// FAQModel is the accordion tab. A failed load only affects this tab.
type FAQModel struct {
	expander search.Expander
	faq      *browser.FAQ
	err      string
	loaded   bool
	input    textinput.Model
	list     *components.List
	visible  []int
	width    int
	height   int
}

// NewFAQModel builds the FAQ tab.
func NewFAQModel(expander search.Expander) FAQModel {
	input := newSearchInput("Buscar pregunta…")
	input.Focus()
	return FAQModel{
		expander: expander,
		input:    input,
		list:     components.NewList(10),
	}
}

func (m FAQModel) withEntries(entries []kb.FAQEntry, err error) FAQModel {
	m.loaded = true
	if err != nil {
		m.err = err.Error()
		m.faq = nil
		return m.reindex()
	}
	m.err = ""
	m.faq = browser.NewFAQ(entries, m.expander)
	m.faq.Search(m.input.Value())
	return m.reindex()
}

func (m FAQModel) resize(width, height int) FAQModel {
	m.width = width
	m.height = height
	m.list.SetPageSize((height - 22) / 2)
	setInputWidth(&m.input, components.BoxContentWidth(width))
	return m
}

func (m FAQModel) reindex() FAQModel {
	m.visible = m.visible[:0:0]
	if m.faq != nil {
		for i, r := range m.faq.Rows() {
			if r.Visible {
				m.visible = append(m.visible, i)
			}
		}
	}
	m.list.Reset(len(m.visible))
	return m
}

func (m FAQModel) typing() bool {
	return m.input.Focused()
}

func (m FAQModel) Update(msg tea.Msg) (FAQModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.typing() {
		return m.updateTyping(key)
	}
	return m.updateRows(key)
}

func (m FAQModel) updateTyping(msg tea.KeyMsg) (FAQModel, tea.Cmd) {
	switch {
	case isBack(msg), isClear(msg):
		if m.input.Value() != "" {
			m.input.Reset()
			return m.search(), nil
		}
		if isBack(msg) {
			m.input.Blur()
		}
		return m, nil
	case isEnter(msg), isDown(msg), isFocusNext(msg):
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m.search(), cmd
}

func (m FAQModel) search() FAQModel {
	if m.faq == nil || m.faq.Query() == m.input.Value() {
		return m
	}
	m.faq.Search(m.input.Value())
	return m.reindex()
}

func (m FAQModel) updateRows(msg tea.KeyMsg) (FAQModel, tea.Cmd) {
	switch {
	case isKey(msg, "/"), isFocusNext(msg), isFocusPrev(msg):
		return m, m.input.Focus()
	case isUp(msg):
		if m.list.AtTop() {
			return m, m.input.Focus()
		}
		m.list.Up()
	case isDown(msg):
		m.list.Down()
	case isEnter(msg), isKey(msg, " "):
		if i := m.list.Selected(); i >= 0 && m.faq != nil {
			m.faq.Toggle(m.visible[i])
		}
	}
	return m, nil
}

func (m FAQModel) hints() []string {
	if m.typing() {
		return components.Hints("esc/ctrl+u", "Limpiar", "enter", "Preguntas")
	}
	if m.faq != nil && m.faq.Terms() == nil {
		return components.Hints("↑/↓", "Mover", "enter", "Abrir/cerrar", "/", "Buscar")
	}
	return components.Hints("↑/↓", "Mover", "/", "Buscar")
}

func (m FAQModel) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	inner := components.BoxContentWidth(width)

	var b strings.Builder
	b.WriteString(m.input.View())
	switch {
	case !m.loaded:
		b.WriteString("\n\n" + MutedStyle.Render("Cargando preguntas…"))
		return components.TitledBox("Preguntas frecuentes", b.String(), width)
	case m.err != "":
		b.WriteString("\n\n" + components.ErrorBox("Error cargando las preguntas", m.err, width))
		return b.String()
	}

	rows := m.faq.Rows()
	b.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("%d pregunta(s)", len(m.visible))))
	start, end := m.list.Window()
	for k := start; k < end; k++ {
		row := rows[m.visible[k]]
		selected := !m.typing() && m.list.IsSelected(k)

		marker := "▸ "
		if row.Open {
			marker = "▾ "
		}
		style := MutedStyle
		if selected {
			style = SelectedStyle
		}
		title := render.Marked(components.SanitizeOneLine(row.TitleHTML), MarkStyle)
		b.WriteString("\n\n" + style.Render(marker) + components.Wrap(title, inner-2))
		if row.Open {
			body := render.Marked(components.SanitizeText(row.BodyHTML), MarkStyle)
			b.WriteString("\n" + components.Indent(components.Wrap(body, inner-2), 2))
		}
	}
	return components.TitledBox("Preguntas frecuentes", b.String(), width)
}
