package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewAdditionals() string {
	var b strings.Builder

	title := m.styles.Title.Render("Additional options")
	b.WriteString(title)
	b.WriteString("\n\n")

	label := "PATH TO INSTALL LAMBDA-CODE AT"
	if m.focus == focusInstallPath {
		b.WriteString(m.styles.SelectedOption.Render(label))
	} else {
		b.WriteString(m.styles.Subtle.Render(label))
	}
	b.WriteString("\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")

	state := m.ctrl.State()
	b.WriteString(m.styles.checkbox(state.CreateLauncher, m.focus == focusLauncher, "Create a 64-bit launcher"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.buttons("BACK", "INSTALL"))
	b.WriteString("\n\n")

	help := m.styles.Subtle.Render("Tab: Switch field, Space: Toggle launcher, Enter: Install, Esc: Back")
	b.WriteString(help)

	return b.String()
}

// enterAdditionals puts the cursor in the path field.
func (m Model) enterAdditionals() (tea.Model, tea.Cmd) {
	m.focus = focusInstallPath
	return m, m.pathInput.Focus()
}

func (m Model) updateAdditionalsState(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		key := keyMsg.String()
		switch {
		case key == "enter":
			m.pathInput.Blur()
			m.ctrl.Install()
			return m.enterInstall()
		case key == "esc":
			m.pathInput.Blur()
			m.ctrl.Back()
			return m, nil
		case key == "tab" || key == "shift+tab" || key == "up" || key == "down":
			if m.focus == focusInstallPath {
				m.focus = focusLauncher
				m.pathInput.Blur()
				return m, nil
			}
			m.focus = focusInstallPath
			return m, m.pathInput.Focus()
		case m.focus == focusLauncher:
			if isSpace(key) || key == "x" {
				m.ctrl.SetCreateLauncher(!m.ctrl.State().CreateLauncher)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	m.ctrl.SetInstallPath(m.pathInput.Value())
	return m, cmd
}
