package tui

import (
	"context"
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambdacode/lccsetup/internal/osinfo"
	"github.com/lambdacode/lccsetup/internal/wizard"
)

const testHome = "/home/ada"

func newTestModel(opts ...Option) Model {
	info := &osinfo.OSInfo{OS: "linux", Architecture: "amd64", HomeDir: testHome}
	return NewModel(wizard.NewController(testHome), info, "1.0.0", opts...)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func assertQuits(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, wizard.ScreenHome, m.Controller().Current())
	sep := string(os.PathSeparator)
	assert.Equal(t, testHome+sep+"LambdaCode"+sep, m.pathInput.Value())
	assert.Contains(t, m.View(), "Welcome to LCC Setup Wizard")
	assert.Contains(t, m.View(), "linux (amd64)")
}

func TestInitChecksAdminWithoutPanicking(t *testing.T) {
	m := newTestModel()
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.NotPanics(t, func() {
		assert.Nil(t, cmd())
	})
}

func TestHappyPathReachesInstall(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, wizard.ScreenComponents, m.Controller().Current())
	assert.Contains(t, m.View(), "Select the components you want to install")

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, wizard.ScreenAdditionals, m.Controller().Current())
	assert.Contains(t, m.View(), "Create a 64-bit launcher")

	var cmd tea.Cmd
	assert.NotPanics(t, func() {
		m, cmd = press(t, m, keyEnter)
	})
	assert.Equal(t, wizard.ScreenInstall, m.Controller().Current())
	assert.Nil(t, cmd, "no installer configured, nothing runs")
	assert.False(t, m.installing)
	assert.Equal(t, 0.0, m.installPct)
	assert.Contains(t, m.View(), "Installing LCC")
}

func TestBackEdges(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, keyEnter, keyEsc)
	assert.Equal(t, wizard.ScreenHome, m.Controller().Current())

	m, _ = press(t, m, keyEnter, keyEnter, keyEsc)
	assert.Equal(t, wizard.ScreenComponents, m.Controller().Current())

	m, _ = press(t, m, keyEsc)
	assert.Equal(t, wizard.ScreenHome, m.Controller().Current())
}

func TestCloseQuits(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, runes("q")} {
		m := newTestModel()
		m, cmd := press(t, m, k)
		assertQuits(t, cmd)
		assert.True(t, m.Controller().Quitting())
	}
}

func TestCtrlCQuitsFromEveryScreen(t *testing.T) {
	screens := append([]wizard.Screen{}, wizard.Screens...)
	screens = append(screens, wizard.Screen("elsewhere"))

	for _, s := range screens {
		t.Run(string(s), func(t *testing.T) {
			m := newTestModel()
			m.Controller().Goto(s)
			_, cmd := press(t, m, keyCtrlC)
			assertQuits(t, cmd)
		})
	}
}

func TestComponentToggles(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, keyEnter)

	m, _ = press(t, m, keySpace)
	assert.Equal(t, []wizard.Component{wizard.ComponentLCC}, m.Controller().State().SelectedComponents())

	m, _ = press(t, m, keyDown, runes("x"))
	assert.Equal(t, []wizard.Component{wizard.ComponentLCC, wizard.ComponentGPP}, m.Controller().State().SelectedComponents())

	m, _ = press(t, m, keyDown, keySpace)
	assert.Equal(t, []wizard.Component{wizard.ComponentLCC}, m.Controller().State().SelectedComponents(), "cursor stays on the last row")

	assert.Contains(t, m.View(), "[x] LCC (with all standard libraries)")
	assert.Contains(t, m.View(), "[ ] G++ (Only install if you don't have)")
}

func TestAdditionalsEditsPathAndLauncher(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, keyEnter, keyEnter)
	require.Equal(t, wizard.ScreenAdditionals, m.Controller().Current())

	defaultPath := m.Controller().State().InstallPath
	m, _ = press(t, m, runes("x"))
	assert.Equal(t, defaultPath+"x", m.Controller().State().InstallPath)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, defaultPath, m.Controller().State().InstallPath)

	m, _ = press(t, m, keyTab, keySpace)
	assert.True(t, m.Controller().State().CreateLauncher)
	assert.Equal(t, defaultPath, m.Controller().State().InstallPath, "space on the checkbox does not reach the path")

	m, _ = press(t, m, keyTab, runes("y"))
	assert.Equal(t, defaultPath+"y", m.Controller().State().InstallPath)
}

func TestUnknownScreen(t *testing.T) {
	m := newTestModel()
	m.Controller().Goto(wizard.Screen("license"))

	assert.Contains(t, m.View(), "Unknown screen: license")

	m, _ = press(t, m, keyEsc)
	assert.Equal(t, wizard.ScreenHome, m.Controller().Current())
}

func TestWindowSizeResizesProgress(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = updated.(Model)
	assert.Equal(t, 40, m.width)
	assert.Equal(t, 20, m.height)
	assert.Equal(t, 32, m.progress.Width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	m = updated.(Model)
	assert.Equal(t, maxProgressWidth, m.progress.Width)
}

type stubInstaller struct {
	copyErr    error
	rolledBack bool
}

func (s *stubInstaller) CopyFiles(ctx context.Context, dest string, components []wizard.Component, progressChan chan<- wizard.InstallProgressMsg) error {
	progressChan <- wizard.InstallProgressMsg{Phase: wizard.PhaseCopyFiles, Progress: 0.5, Step: "Copying", LogOutput: "copied lcc"}
	return s.copyErr
}

func (s *stubInstaller) Verify(ctx context.Context, dest string) error { return nil }

func (s *stubInstaller) Rollback(ctx context.Context, dest string) error {
	s.rolledBack = true
	return nil
}

// pump feeds installer messages back into the model until the channel closes.
func pump(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.runInstaller()()
	for {
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		if _, done := msg.(installProgressCompletedMsg); done {
			return m
		}
		require.NotNil(t, cmd)
		msg = cmd()
	}
}

func TestInstallerDrivesProgress(t *testing.T) {
	m := newTestModel(WithInstaller(&stubInstaller{}))
	m, cmd := press(t, m, keyEnter, keyEnter, keyEnter)
	require.NotNil(t, cmd)
	require.True(t, m.installing)

	m = pump(t, m)

	assert.False(t, m.installing)
	assert.True(t, m.installDone)
	assert.NoError(t, m.installErr)
	assert.Equal(t, 1.0, m.installPct)
	assert.Contains(t, m.installLogs, "copied lcc")
	assert.Contains(t, m.View(), "Installation complete")

	_, cmd = press(t, m, keyEnter)
	assertQuits(t, cmd)
}

func TestInstallerFailureRollsBack(t *testing.T) {
	inst := &stubInstaller{copyErr: errors.New("disk full")}
	m := newTestModel(WithInstaller(inst))
	m, _ = press(t, m, keyEnter, keyEnter, keyEnter)

	m = pump(t, m)

	assert.True(t, inst.rolledBack)
	assert.True(t, m.installDone)
	require.Error(t, m.installErr)
	assert.Contains(t, m.installErr.Error(), "disk full")
	assert.Contains(t, m.View(), "Installation failed")
}
