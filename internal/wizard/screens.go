package wizard

// Screen names one step of the wizard. Values outside the four known
// screens are representable because Goto does not validate its target.
type Screen string

const (
	ScreenHome        Screen = "home"
	ScreenComponents  Screen = "components"
	ScreenAdditionals Screen = "adds"
	ScreenInstall     Screen = "install"
)

// Screens lists the known screens in forward order.
var Screens = []Screen{
	ScreenHome,
	ScreenComponents,
	ScreenAdditionals,
	ScreenInstall,
}

// Known reports whether s is one of the four wizard screens.
func (s Screen) Known() bool {
	switch s {
	case ScreenHome, ScreenComponents, ScreenAdditionals, ScreenInstall:
		return true
	}
	return false
}

func (s Screen) Title() string {
	switch s {
	case ScreenHome:
		return "Welcome"
	case ScreenComponents:
		return "Components"
	case ScreenAdditionals:
		return "Additionals"
	case ScreenInstall:
		return "Install"
	default:
		return string(s)
	}
}

// next follows a plain forward edge. Additionals leaves through Install,
// and Install and unknown screens have no forward edge.
func (s Screen) next() (Screen, bool) {
	switch s {
	case ScreenHome:
		return ScreenComponents, true
	case ScreenComponents:
		return ScreenAdditionals, true
	}
	return s, false
}

func (s Screen) back() (Screen, bool) {
	switch s {
	case ScreenComponents:
		return ScreenHome, true
	case ScreenAdditionals:
		return ScreenComponents, true
	}
	return s, false
}
