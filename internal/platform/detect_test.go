package platform

import (
	"context"
	"runtime"
	"testing"
)

func TestDetectReportsRuntimeOS(t *testing.T) {
	info, err := NewDetector().Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch == "" {
		t.Error("Arch must not be empty")
	}
}

func TestDetectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// gopsutil may or may not notice the cancelled context before
	// returning; either a cancellation error or a valid Info is fine,
	// but never both nil.
	info, err := NewDetector().Detect(ctx)
	if err == nil && info == nil {
		t.Fatal("Detect returned neither info nor error")
	}
}

func TestOSTypeFrom(t *testing.T) {
	tests := []struct {
		goos string
		want OSType
	}{
		{"windows", OSWindows},
		{"darwin", OSMac},
		{"linux", OSLinux},
		{"freebsd", OSUnknown},
		{"js", OSUnknown},
		{"", OSUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := OSTypeFrom(tt.goos); got != tt.want {
				t.Errorf("OSTypeFrom(%q) = %s, want %s", tt.goos, got, tt.want)
			}
		})
	}
}

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		arch string
		want string
	}{
		{"amd64", "amd64"},
		{"x86_64", "amd64"},
		{"arm64", "arm64"},
		{"aarch64", "arm64"},
		{"riscv64", "riscv64"},
	}

	for _, tt := range tests {
		if got := normalizeArch(tt.arch); got != tt.want {
			t.Errorf("normalizeArch(%q) = %q, want %q", tt.arch, got, tt.want)
		}
	}
}

func TestStaticDetector(t *testing.T) {
	want := &Info{OS: "plan9", Arch: "amd64"}
	got, err := Static(want).Detect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("static detector must return the pinned info")
	}
	if got.OSType() != OSUnknown {
		t.Errorf("plan9 OSType = %s, want %s", got.OSType(), OSUnknown)
	}
}
