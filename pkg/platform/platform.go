package platform

import (
	"runtime"
	"strings"
)

// Platform is a packaging target as understood by the packager
type Platform string

const (
	Windows Platform = "win32"
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
	MAS     Platform = "mas" // Mac App Store build
)

// Normalize maps user-supplied platform names onto packager names.
// Unknown values are returned lower-cased but otherwise untouched.
func Normalize(name string) Platform {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "win32", "windows", "win":
		return Windows
	case "osx", "mac", "macos", "darwin":
		return Darwin
	case "linux":
		return Linux
	}
	return Platform(name)
}

// Current returns the platform of the machine we are running on
func Current() Platform {
	return Normalize(runtime.GOOS)
}

// IsMacOS reports whether the host is macOS.
// Converting to .icns relies on sips and iconutil, which only exist there.
func IsMacOS() bool {
	return runtime.GOOS == "darwin"
}
