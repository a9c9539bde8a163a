// Package elevate answers whether the wizard runs with administrative rights.
//
// The answer is informational only. Nothing relaunches the process elevated.
package elevate

import (
	"fmt"

	"github.com/lambdacode/lccsetup/internal/errdefs"
	"github.com/lambdacode/lccsetup/internal/log"
)

var checkAdmin = isUserAnAdmin

// IsAdmin reports whether the current user is an administrator. Any failure
// of the underlying check, including a panic, is reported as false.
func IsAdmin() (admin bool) {
	defer func() {
		if r := recover(); r != nil {
			err := errdefs.NewCustomError(errdefs.ErrTypeElevationUnavailable, fmt.Sprintf("admin check panicked: %v", r))
			log.Debug("admin check failed", "err", err)
			admin = false
		}
	}()

	admin, err := checkAdmin()
	if err != nil {
		log.Debug("admin check failed", "err", err)
		return false
	}
	return admin
}
