package osinfo

import (
	"os"
	"runtime"

	"github.com/lambdacode/lccsetup/internal/errdefs"
)

type OSInfo struct {
	OS           string
	Architecture string
	HomeDir      string
}

var getOsFunc = getGoos
var getArchFunc = getGoarch
var getHomeFunc = os.UserHomeDir

func getGoos() string {
	return runtime.GOOS
}

func getGoarch() string {
	return runtime.GOARCH
}

// IsWindows reports whether the running platform is Windows.
func (i *OSInfo) IsWindows() bool {
	return i.OS == "windows"
}

func (i *OSInfo) String() string {
	return i.OS + " (" + i.Architecture + ")"
}

// GetOSInfo collects the platform facts the wizard seeds its defaults from.
func GetOSInfo() (*OSInfo, error) {
	home, err := getHomeFunc()
	if err != nil {
		return nil, errdefs.Wrap(errdefs.ErrTypeHomeDirectory, "failed to resolve home directory", err)
	}
	if home == "" {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeHomeDirectory, "home directory is empty")
	}

	return &OSInfo{
		OS:           getOsFunc(),
		Architecture: getArchFunc(),
		HomeDir:      home,
	}, nil
}
