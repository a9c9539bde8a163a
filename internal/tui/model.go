package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lambdacode/lccsetup/internal/elevate"
	"github.com/lambdacode/lccsetup/internal/log"
	"github.com/lambdacode/lccsetup/internal/osinfo"
	"github.com/lambdacode/lccsetup/internal/wizard"
)

const (
	maxProgressWidth = 60
	maxInstallLogs   = 50
)

type additionalsFocus int

const (
	focusInstallPath additionalsFocus = iota
	focusLauncher
)

type Model struct {
	version string
	ctrl    *wizard.Controller
	osInfo  *osinfo.OSInfo
	styles  Styles
	width   int
	height  int

	// Components screen
	selectedComponent int

	// Additionals screen
	pathInput textinput.Model
	focus     additionalsFocus

	// Install screen
	installer    wizard.Installer
	progressChan chan wizard.InstallProgressMsg
	progress     progress.Model
	spinner      spinner.Model
	installing   bool
	installStep  string
	installPct   float64
	installLogs  []string
	installErr   error
	installDone  bool
}

type Option func(*Model)

// WithInstaller hands the Install screen something to run. Without one the
// screen only shows an idle progress bar.
func WithInstaller(inst wizard.Installer) Option {
	return func(m *Model) {
		m.installer = inst
	}
}

// NewModel builds the UI around an existing controller. info may be nil.
func NewModel(ctrl *wizard.Controller, info *osinfo.OSInfo, version string, opts ...Option) Model {
	styles := NewStyles(LambdaTheme())

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "PATH TO INSTALL LAMBDA-CODE AT"
	ti.CharLimit = 4096
	ti.Width = 48
	ti.SetValue(ctrl.State().InstallPath)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	m := Model{
		version:   version,
		ctrl:      ctrl,
		osInfo:    info,
		styles:    styles,
		pathInput: ti,
		progress:  styles.NewThemedProgress(maxProgressWidth),
		spinner:   s,
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Controller exposes the wizard state the model drives.
func (m Model) Controller() *wizard.Controller {
	return m.ctrl
}

func (m Model) Init() tea.Cmd {
	return checkAdminStatus
}

// checkAdminStatus records whether we run elevated. Nothing acts on it.
func checkAdminStatus() tea.Msg {
	log.Debug("admin check", "admin", elevate.IsAdmin())
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-8))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	case spinner.TickMsg:
		if !m.installing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.ctrl.Current() {
	case wizard.ScreenHome:
		return m.updateHomeState(msg)
	case wizard.ScreenComponents:
		return m.updateComponentsState(msg)
	case wizard.ScreenAdditionals:
		return m.updateAdditionalsState(msg)
	case wizard.ScreenInstall:
		return m.updateInstallState(msg)
	default:
		return m.updateUnknownState(msg)
	}
}

func (m Model) View() string {
	var body string
	switch m.ctrl.Current() {
	case wizard.ScreenHome:
		body = m.viewHome()
	case wizard.ScreenComponents:
		body = m.viewComponents()
	case wizard.ScreenAdditionals:
		body = m.viewAdditionals()
	case wizard.ScreenInstall:
		body = m.viewInstall()
	default:
		body = m.viewUnknown()
	}
	return m.renderTitleBar() + "\n" + body
}

// quit stops the program right away. No cleanup runs.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.ctrl.Quit()
	return m, tea.Quit
}

func isSpace(key string) bool {
	return key == " " || key == "space"
}
