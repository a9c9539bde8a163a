package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lambdacode/lccsetup/internal/log"
	"github.com/lambdacode/lccsetup/internal/wizard"
)

const visibleInstallLogs = 8

func (m Model) viewInstall() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Title.Render("Installing LCC")
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.installing {
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Normal.Render(m.installStep)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.progress.ViewAs(m.installPct))
	b.WriteString("\n\n")

	lines := m.installLogs
	if len(lines) > visibleInstallLogs {
		lines = lines[len(lines)-visibleInstallLogs:]
	}
	panel := strings.Join(lines, "\n")
	if panel == "" {
		panel = " "
	}
	b.WriteString(m.styles.LogPanel.Width(max(20, m.progress.Width)).Render(panel))
	b.WriteString("\n\n")

	if m.installDone {
		if m.installErr != nil {
			b.WriteString(m.styles.Error.Render("✗ Installation failed: " + m.installErr.Error()))
		} else {
			b.WriteString(m.styles.Success.Render("✓ Installation complete!"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.styles.Subtle.Render("Press Enter to exit"))
	} else {
		b.WriteString(m.styles.Subtle.Render("Ctrl+C: Quit"))
	}

	return b.String()
}

// enterInstall starts the installer if one was provided. Without one the
// screen stays idle.
func (m Model) enterInstall() (tea.Model, tea.Cmd) {
	if m.installer == nil || m.installing || m.installDone {
		return m, nil
	}

	m.installing = true
	m.installStep = "Starting installation..."
	m.progressChan = make(chan wizard.InstallProgressMsg, 32)
	return m, tea.Batch(m.spinner.Tick, m.runInstaller())
}

func (m Model) runInstaller() tea.Cmd {
	inst := m.installer
	state := m.ctrl.State()
	progressChan := m.progressChan
	return func() tea.Msg {
		go func() {
			if err := wizard.RunInstaller(context.Background(), inst, state, progressChan); err != nil {
				log.Error("installation failed", "err", err)
			}
		}()
		return m.listenForInstallProgress()()
	}
}

func (m Model) listenForInstallProgress() tea.Cmd {
	progressChan := m.progressChan
	return func() tea.Msg {
		msg, ok := <-progressChan
		if !ok {
			return installProgressCompletedMsg{}
		}
		return installProgressMsg{msg}
	}
}

func (m Model) updateInstallState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case installProgressMsg:
		if msg.Step != "" {
			m.installStep = msg.Step
		}
		if msg.Progress > m.installPct {
			m.installPct = msg.Progress
		}
		if msg.LogOutput != "" {
			m.installLogs = append(m.installLogs, msg.LogOutput)
			if len(m.installLogs) > maxInstallLogs {
				m.installLogs = m.installLogs[len(m.installLogs)-maxInstallLogs:]
			}
		}
		if msg.IsComplete {
			m.installing = false
			m.installDone = true
			m.installErr = msg.Error
		}
		return m, m.listenForInstallProgress()
	case installProgressCompletedMsg:
		m.installing = false
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "enter" && m.installDone {
			return m.quit()
		}
	}
	return m, nil
}
