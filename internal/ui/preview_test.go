package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/render"
	"github.com/gravitrone/kbase/internal/ui/components"
)

func TestPreferredPreviewWidth(t *testing.T) {
	assert.Equal(t, previewMinWidth, preferredPreviewWidth(0))
	assert.Equal(t, previewMinWidth, preferredPreviewWidth(50))
	assert.Equal(t, 60, preferredPreviewWidth(100))
	assert.Equal(t, previewMaxWidth, preferredPreviewWidth(300))
}

func TestRenderPreviewMedia(t *testing.T) {
	res := kb.Resource{Type: kb.ResourceVideo, Title: "Demo", Note: "2 min", Path: "media/demo.mp4"}
	out := components.SanitizeText(renderPreview(res, "/srv/site/media/demo.mp4", 120))

	assert.Contains(t, out, "Demo")
	assert.Contains(t, out, "Tipo: VIDEO")
	assert.Contains(t, out, "Nota: 2 min")
	assert.Contains(t, out, "demo.mp4")
	assert.Contains(t, out, "visor del sistema")
	assert.NotContains(t, out, render.NoPreview)
}

func TestRenderPreviewOtherTypes(t *testing.T) {
	res := kb.Resource{Type: "pdf", Path: "docs/manual.pdf"}
	out := components.SanitizeText(renderPreview(res, "", 120))

	assert.Contains(t, out, "Recurso")
	assert.Contains(t, out, "Tipo: PDF")
	assert.NotContains(t, out, "Nota")
	assert.NotContains(t, out, "Link")
	assert.Contains(t, out, render.NoPreview)
}

func TestRenderPreviewRowsFitTheBox(t *testing.T) {
	res := kb.Resource{Type: kb.ResourceImage, Title: "POS", Path: "img/pos.png"}
	link := "https://kb.example.com/" + strings.Repeat("carpeta/", 20) + "pos.png"
	out := renderPreview(res, link, 120)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), preferredPreviewWidth(120))
	}
	assert.Contains(t, components.SanitizeText(out), "Link: https://kb.example.com/")
	assert.Contains(t, components.SanitizeText(out), "…")
}
