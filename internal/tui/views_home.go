package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Title.Render("Welcome to LCC Setup Wizard")
	b.WriteString(title)
	b.WriteString("\n")

	overview := "The setup will guide you through the installation of LCC on your machine,\n"
	overview += "it's recommended to " + m.styles.Bold.Render("close") + m.styles.Subtle.Render(" all other applications before starting the setup.")
	b.WriteString(m.styles.Subtle.Render(overview))
	b.WriteString("\n\n")

	if m.osInfo != nil {
		b.WriteString(m.styles.Normal.Render("System: " + m.osInfo.String()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.buttons("CLOSE", "NEXT"))
	b.WriteString("\n\n")

	help := m.styles.Subtle.Render("Enter: Next, Esc/q: Close")
	b.WriteString(help)

	return b.String()
}

func (m Model) updateHomeState(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.ctrl.Next()
		case "esc", "q":
			return m.quit()
		}
	}
	return m, nil
}
