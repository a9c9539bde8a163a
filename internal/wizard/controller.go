package wizard

import (
	"github.com/lambdacode/lccsetup/internal/log"
)

// Controller owns the WizardState and the current-screen pointer. It is
// driven from the UI event loop only and is not safe for concurrent use.
type Controller struct {
	state    WizardState
	quitting bool
}

func NewController(home string) *Controller {
	return &Controller{state: NewWizardState(home)}
}

// State returns a copy of the wizard state.
func (c *Controller) State() WizardState {
	return c.state.clone()
}

func (c *Controller) Current() Screen {
	return c.state.Current
}

// Goto moves to target unconditionally. No edge check is made and unknown
// names are stored as given.
func (c *Controller) Goto(target Screen) {
	if !target.Known() {
		log.Debug("switching to unknown screen", "screen", string(target))
	}
	log.Debug("screen change", "from", string(c.state.Current), "to", string(target))
	c.state.Current = target
}

// Install switches to the Install screen. It does no installation work.
func (c *Controller) Install() {
	c.Goto(ScreenInstall)
}

// Next follows the forward edge from the current screen. Leaving
// Additionals forward is Install.
func (c *Controller) Next() {
	if c.state.Current == ScreenAdditionals {
		c.Install()
		return
	}
	if target, ok := c.state.Current.next(); ok {
		c.Goto(target)
	}
}

// Back follows the back edge, if the current screen has one.
func (c *Controller) Back() {
	if target, ok := c.state.Current.back(); ok {
		c.Goto(target)
	}
}

// Quit marks the wizard as finished. The UI stops its loop on the next
// return without running any cleanup.
func (c *Controller) Quit() {
	c.quitting = true
}

func (c *Controller) Quitting() bool {
	return c.quitting
}

func (c *Controller) ToggleComponent(comp Component) {
	c.state.Components[comp] = !c.state.Components[comp]
}

func (c *Controller) SetInstallPath(path string) {
	c.state.InstallPath = path
}

func (c *Controller) SetCreateLauncher(enabled bool) {
	c.state.CreateLauncher = enabled
}
