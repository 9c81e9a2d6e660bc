// Package platform provides host platform detection for venvterm.
//
// It detects OS, architecture, and Linux distribution details, and injects
// this information as a read-only table into Lua settings files. The package
// uses gopsutil for Linux distribution detection and falls back gracefully
// when detection fails.
package platform

import "context"

// OSType classifies the host operating system for activation purposes.
type OSType string

const (
	// OSWindows is any Windows host
	OSWindows OSType = "windows"
	// OSMac is macOS
	OSMac OSType = "mac"
	// OSLinux is any Linux host
	OSLinux OSType = "linux"
	// OSUnknown is an operating system venvterm does not recognize
	OSUnknown OSType = "unknown"
)

// OSTypeFrom maps a GOOS value to an OSType.
func OSTypeFrom(goos string) OSType {
	switch goos {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	default:
		return OSUnknown
	}
}

// Info contains platform detection information.
type Info struct {
	OS       string // GOOS ("linux", "darwin", "windows", ...)
	Arch     string // "amd64", "arm64" (normalized, raw value if unmapped)
	Distro   string // distro ID (Linux only, e.g. "ubuntu")
	DistroV  string // distro version (Linux only, e.g. "22.04")
	Hostname string // host name, best effort
}

// OSType returns the activation-relevant OS classification.
func (i *Info) OSType() OSType {
	return OSTypeFrom(i.OS)
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// Static returns a detector that always reports the given info.
// Useful for tests and for pinning the platform in callers.
func Static(info *Info) Detector {
	return staticDetector{info: info}
}

type staticDetector struct {
	info *Info
}

func (d staticDetector) Detect(ctx context.Context) (*Info, error) {
	return d.info, nil
}
