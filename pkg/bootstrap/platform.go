package bootstrap

import (
	"runtime"
	"strings"
)

// Platform identifies the host operating system for output naming.
type Platform int

const (
	// PlatformOther is any operating system not listed below.
	PlatformOther Platform = iota
	PlatformLinux
	PlatformDarwin
	PlatformFreeBSD
	PlatformWindows
)

var platformNames = map[Platform]string{
	PlatformOther:   "other",
	PlatformLinux:   "linux",
	PlatformDarwin:  "darwin",
	PlatformFreeBSD: "freebsd",
	PlatformWindows: "windows",
}

// ParsePlatform maps a GOOS value to a Platform. Unrecognized values map to
// PlatformOther.
func ParsePlatform(goos string) Platform {
	goos = strings.ToLower(strings.TrimSpace(goos))
	for p, name := range platformNames {
		if p != PlatformOther && name == goos {
			return p
		}
	}
	return PlatformOther
}

// HostPlatform returns the platform the program runs on.
func HostPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

// ExecutableSuffix returns the file name suffix executables need on the platform.
func (p Platform) ExecutableSuffix() string {
	if p == PlatformWindows {
		return ".exe"
	}
	return ""
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return platformNames[PlatformOther]
}
