package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lambdacode/lccsetup/internal/wizard"
)

// The controller accepts any screen name, so there has to be something
// to show when it is not one of ours.
func (m Model) viewUnknown() string {
	var b strings.Builder

	title := m.styles.Error.Render("Unknown screen: " + string(m.ctrl.Current()))
	b.WriteString(title)
	b.WriteString("\n\n")

	help := m.styles.Subtle.Render("Esc: Home, Ctrl+C: Quit")
	b.WriteString(help)

	return b.String()
}

func (m Model) updateUnknownState(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.ctrl.Goto(wizard.ScreenHome)
	}
	return m, nil
}
