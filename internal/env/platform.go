package env

import "runtime"

var (
	// Linux is true on a Linux host.
	Linux = runtime.GOOS == "linux"

	// MacOS is true on a macOS host.
	MacOS = runtime.GOOS == "darwin"
)
