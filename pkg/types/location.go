package types

import (
	"fmt"
	"runtime"
)

// Platform identifies one of the operating systems a configuration can be
// used from.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformMac     Platform = "mac"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformLinux, PlatformWindows, PlatformMac}

// CurrentPlatform returns the platform the process is running on.
func CurrentPlatform() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}

// PlatformFromGOOS maps a GOOS value to a Platform. Anything that is not
// windows or darwin is treated as linux.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMac
	default:
		return PlatformLinux
	}
}

// ConfigurationLocation holds one path per platform. An empty string means
// the configuration is not used on that platform.
type ConfigurationLocation struct {
	Linux   string `yaml:"linux_path" json:"linux_path"`
	Windows string `yaml:"windows_path" json:"windows_path"`
	Mac     string `yaml:"mac_path" json:"mac_path"`
}

// Location is the short name used across the codebase.
type Location = ConfigurationLocation

// For returns the path registered for the given platform.
func (l Location) For(p Platform) string {
	switch p {
	case PlatformWindows:
		return l.Windows
	case PlatformMac:
		return l.Mac
	default:
		return l.Linux
	}
}

// IsZero reports whether no platform has a path.
func (l Location) IsZero() bool {
	return l.Linux == "" && l.Windows == "" && l.Mac == ""
}

func (l Location) String() string {
	return fmt.Sprintf("linux=%q windows=%q mac=%q", l.Linux, l.Windows, l.Mac)
}

// Record is a pipeline configuration entry as stored in the registry.
type Record struct {
	ID       int      `json:"id"`
	Code     string   `json:"code"`
	Location Location `json:"location"`
}
