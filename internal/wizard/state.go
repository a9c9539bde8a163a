package wizard

import "os"

const installDirName = "LambdaCode"

// WizardState is everything the UI can change. It lives for one process run.
type WizardState struct {
	Current        Screen
	InstallPath    string
	CreateLauncher bool
	Components     map[Component]bool
}

// DefaultInstallPath is <home>/LambdaCode/ using the platform separator.
// home is used as given, so a trailing separator is not collapsed.
func DefaultInstallPath(home string) string {
	sep := string(os.PathSeparator)
	return home + sep + installDirName + sep
}

func NewWizardState(home string) WizardState {
	return WizardState{
		Current:     ScreenHome,
		InstallPath: DefaultInstallPath(home),
		Components:  make(map[Component]bool),
	}
}

// SelectedComponents returns the checked components in display order.
func (s WizardState) SelectedComponents() []Component {
	var selected []Component
	for _, c := range AllComponents {
		if s.Components[c] {
			selected = append(selected, c)
		}
	}
	return selected
}

func (s WizardState) clone() WizardState {
	out := s
	out.Components = make(map[Component]bool, len(s.Components))
	for k, v := range s.Components {
		out.Components[k] = v
	}
	return out
}
