package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// It uses runtime.GOOS and runtime.GOARCH for OS and architecture, and
// gopsutil for Linux distribution details and the host name.
//
// If gopsutil fails, distro fields stay empty and detection still
// succeeds; only context cancellation is a hard failure.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: normalizeArch(runtime.GOARCH),
	}

	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		// Graceful fallback, OS/arch alone are enough for activation
		return info, nil
	}

	info.Hostname = hostInfo.Hostname
	if runtime.GOOS == "linux" {
		info.Distro = strings.ToLower(strings.TrimSpace(hostInfo.Platform))
		info.DistroV = strings.TrimSpace(hostInfo.PlatformVersion)
	}

	return info, nil
}

// normalizeArch maps GOARCH spellings to the names used in settings files.
// Unmapped values pass through unchanged.
func normalizeArch(arch string) string {
	switch arch {
	case "amd64", "x86_64":
		return "amd64"
	case "arm64", "aarch64":
		return "arm64"
	default:
		return arch
	}
}
