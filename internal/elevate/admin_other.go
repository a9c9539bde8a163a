//go:build !windows

package elevate

// Only Windows has a notion of the IsUserAnAdmin check.
func isUserAnAdmin() (bool, error) {
	return false, nil
}
