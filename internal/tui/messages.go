package tui

import "github.com/lambdacode/lccsetup/internal/wizard"

type installProgressMsg struct {
	wizard.InstallProgressMsg
}

type installProgressCompletedMsg struct{}
