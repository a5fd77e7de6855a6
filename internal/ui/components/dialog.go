package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7f57b4")).
			Padding(1, 2).
			Width(48)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
)

// InputDialog renders a prompt around an already rendered input field.
func InputDialog(title, prompt, field, hint string) string {
	body := dialogTitleStyle.Render(SanitizeOneLine(title)) + "\n\n"
	if prompt != "" {
		body += dialogHintStyle.Render(prompt) + "\n\n"
	}
	body += field
	if hint != "" {
		body += "\n\n" + dialogHintStyle.Render(hint)
	}
	return dialogStyle.Render(body)
}
