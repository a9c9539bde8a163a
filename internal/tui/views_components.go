package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lambdacode/lccsetup/internal/wizard"
)

func (m Model) viewComponents() string {
	var b strings.Builder

	title := m.styles.Title.Render("Select the components you want to install:")
	b.WriteString(title)
	b.WriteString("\n\n")

	state := m.ctrl.State()
	for i, c := range wizard.AllComponents {
		b.WriteString(m.styles.checkbox(state.Components[c], i == m.selectedComponent, c.Label()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.buttons("BACK", "NEXT"))
	b.WriteString("\n\n")

	help := m.styles.Subtle.Render("Use ↑/↓ to navigate, Space to toggle, Enter: Next, Esc: Back")
	b.WriteString(help)

	return b.String()
}

func (m Model) updateComponentsState(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		key := keyMsg.String()
		switch {
		case key == "up" || key == "k":
			if m.selectedComponent > 0 {
				m.selectedComponent--
			}
		case key == "down" || key == "j":
			if m.selectedComponent < len(wizard.AllComponents)-1 {
				m.selectedComponent++
			}
		case isSpace(key) || key == "x":
			m.ctrl.ToggleComponent(wizard.AllComponents[m.selectedComponent])
		case key == "enter":
			m.ctrl.Next()
			return m.enterAdditionals()
		case key == "esc":
			m.ctrl.Back()
		}
	}
	return m, nil
}
