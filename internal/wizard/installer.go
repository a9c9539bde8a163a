package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/lambdacode/lccsetup/internal/errdefs"
)

type InstallPhase int

const (
	PhaseCopyFiles InstallPhase = iota
	PhaseVerify
	PhaseRollback
	PhaseComplete
)

type InstallProgressMsg struct {
	Phase      InstallPhase
	Progress   float64
	Step       string
	IsComplete bool
	LogOutput  string
	Error      error
}

// Installer does the deployment work the wizard only fronts. No
// implementation ships with the wizard; one can be handed to the UI.
type Installer interface {
	CopyFiles(ctx context.Context, dest string, components []Component, progressChan chan<- InstallProgressMsg) error
	Verify(ctx context.Context, dest string) error
	Rollback(ctx context.Context, dest string) error
}

// RunInstaller copies, then verifies, rolling back if either step fails.
// It always finishes with one IsComplete message and closes progressChan.
func RunInstaller(ctx context.Context, inst Installer, state WizardState, progressChan chan<- InstallProgressMsg) error {
	defer close(progressChan)

	dest := state.InstallPath
	components := state.SelectedComponents()

	names := make([]string, 0, len(components))
	for _, c := range components {
		names = append(names, c.String())
	}

	progressChan <- InstallProgressMsg{
		Phase:     PhaseCopyFiles,
		Progress:  0.10,
		Step:      "Copying files...",
		LogOutput: fmt.Sprintf("Installing [%s] to %s", strings.Join(names, ", "), dest),
	}
	if err := inst.CopyFiles(ctx, dest, components, progressChan); err != nil {
		return rollback(ctx, inst, dest, errdefs.Wrap(errdefs.ErrTypeInstallerFailed, "failed to copy files", err), progressChan)
	}

	progressChan <- InstallProgressMsg{
		Phase:     PhaseVerify,
		Progress:  0.90,
		Step:      "Verifying installation...",
		LogOutput: "Verifying " + dest,
	}
	if err := inst.Verify(ctx, dest); err != nil {
		return rollback(ctx, inst, dest, errdefs.Wrap(errdefs.ErrTypeInstallerFailed, "verification failed", err), progressChan)
	}

	progressChan <- InstallProgressMsg{
		Phase:      PhaseComplete,
		Progress:   1.0,
		Step:       "Installation complete",
		IsComplete: true,
		LogOutput:  "LCC installed to " + dest,
	}
	return nil
}

func rollback(ctx context.Context, inst Installer, dest string, cause error, progressChan chan<- InstallProgressMsg) error {
	progressChan <- InstallProgressMsg{
		Phase:     PhaseRollback,
		Step:      "Rolling back...",
		LogOutput: cause.Error(),
	}

	logOutput := "Rolled back " + dest
	if err := inst.Rollback(ctx, dest); err != nil {
		cause = fmt.Errorf("%w (rollback also failed: %v)", cause, err)
		logOutput = "Rollback failed: " + err.Error()
	}

	progressChan <- InstallProgressMsg{
		Phase:      PhaseRollback,
		Step:       "Installation failed",
		IsComplete: true,
		LogOutput:  logOutput,
		Error:      cause,
	}
	return cause
}
