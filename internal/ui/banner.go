package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 █████   ████ ███████████    █████████    █████████  ██████████
░░███   ███░ ░░███░░░░░███  ███░░░░░███  ███░░░░░███░░███░░░░░█
 ░███  ███    ░███    ░███ ░███    ░███ ░███    ░░░  ░███  █ ░
 ░███████     ░██████████  ░███████████ ░░█████████  ░██████
 ░███░░███    ░███░░░░░███ ░███░░░░░███  ░░░░░░░░███ ░███░░█
 ░███ ░░███   ░███    ░███ ░███    ░███  ███    ░███ ░███ ░   █
 █████ ░░████ ███████████  █████   █████░░█████████  ██████████
░░░░░   ░░░░ ░░░░░░░░░░░  ░░░░░   ░░░░░  ░░░░░░░░░  ░░░░░░░░░░`

const bannerSubtitle = "Base de conocimiento • Guiones, recursos y preguntas frecuentes"

// RenderBanner returns the styled ASCII banner. Short terminals get the
// subtitle only.
func RenderBanner(height int) string {
	subtitleWidth := lipgloss.Width(bannerSubtitle)
	if height > 0 && height < 30 {
		return MutedStyle.Render(bannerSubtitle) + "\n"
	}

	lines := splitLines(bannerArt)
	baseStyle := lipgloss.NewStyle().Foreground(ColorPrimary)

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	var rendered strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		rendered.WriteString(baseStyle.Render(line) + "\n")
	}

	blockWidth := maxWidth
	if blockWidth < subtitleWidth {
		blockWidth = subtitleWidth
	}
	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)
	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return "\n" + rendered.String() + "\n" + subtitle + "\n" + underline + "\n"
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimPrefix(s, "\n"), "\n")
}
