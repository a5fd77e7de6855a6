package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/render"
	"github.com/gravitrone/kbase/internal/ui/components"
)

var previewBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(1, 2)

const (
	previewWidthPercent = 60
	previewMinWidth     = 40
	previewMaxWidth     = 72
)

func preferredPreviewWidth(termWidth int) int {
	if termWidth <= 0 {
		return previewMinWidth
	}
	w := termWidth * previewWidthPercent / 100
	if w < previewMinWidth {
		w = previewMinWidth
	}
	if w > previewMaxWidth {
		w = previewMaxWidth
	}
	return w
}

func previewBoxContentWidth(width int) int {
	contentWidth := width - previewBoxStyle.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}
	return contentWidth
}

func renderPreviewBox(content string, width int) string {
	// Width includes padding but not borders.
	borderW := previewBoxStyle.GetBorderLeftSize() + previewBoxStyle.GetBorderRightSize()
	inner := width - borderW
	if inner < 1 {
		inner = 1
	}
	return previewBoxStyle.Width(inner).Render(content)
}

func renderPreviewRow(label, value string, width int) string {
	maxValue := width - lipgloss.Width(label) - 2
	if maxValue < 4 {
		maxValue = 4
	}
	return components.InfoRow(label, components.ClampTextWidthEllipsis(value, maxValue))
}

// renderPreview is the terminal stand-in for the media preview: the
// resource's details and what can be done with it.
func renderPreview(res kb.Resource, link string, termWidth int) string {
	width := preferredPreviewWidth(termWidth)
	inner := previewBoxContentWidth(width)

	lines := []string{
		SelectedStyle.Render(components.ClampTextWidthEllipsis(res.DisplayTitle(), inner)),
		"",
		renderPreviewRow("Tipo", strings.ToUpper(res.Kind()), inner),
	}
	if res.Note != "" {
		lines = append(lines, renderPreviewRow("Nota", res.Note, inner))
	}
	if link != "" {
		lines = append(lines, renderPreviewRow("Link", link, inner))
	}
	lines = append(lines, "")
	if res.Previewable() {
		lines = append(lines, NormalStyle.Render(render.PreviewLabel(res.Kind())+": pulsa o para abrirlo en el visor del sistema"))
	} else {
		lines = append(lines, MutedStyle.Render(render.NoPreview))
	}
	return renderPreviewBox(strings.Join(lines, "\n"), width)
}
