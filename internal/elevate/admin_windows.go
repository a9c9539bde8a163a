//go:build windows

package elevate

import (
	"golang.org/x/sys/windows"

	"github.com/lambdacode/lccsetup/internal/errdefs"
)

var (
	modShell32        = windows.NewLazySystemDLL("shell32.dll")
	procIsUserAnAdmin = modShell32.NewProc("IsUserAnAdmin")
)

func isUserAnAdmin() (bool, error) {
	if err := procIsUserAnAdmin.Find(); err != nil {
		return false, errdefs.Wrap(errdefs.ErrTypeElevationUnavailable, "shell32!IsUserAnAdmin is unavailable", err)
	}
	r1, _, _ := procIsUserAnAdmin.Call()
	return r1 != 0, nil
}
