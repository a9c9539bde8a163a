package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) renderBanner() string {
	logo := `
██╗      ██████╗ ██████╗
██║     ██╔════╝██╔════╝
██║     ██║     ██║     
██║     ██║     ██║     
███████╗╚██████╗╚██████╗
╚══════╝ ╚═════╝ ╚═════╝`

	theme := LambdaTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		Align(lipgloss.Center).
		MarginBottom(1)

	return style.Render(logo)
}

// renderTitleBar stands in for the black strip across the top of each screen.
func (m Model) renderTitleBar() string {
	text := "LCC Setup"
	if m.version != "" {
		text += " " + m.version
	}
	return m.styles.TitleBar.Render(text)
}
