// Package testutil provides utilities for testing venvterm in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points every path venvterm reads at per-test temp
// directories so tests never touch the user's real shell rc files or
// settings. Cleanup is handled by t.TempDir().
func SetupTestEnv(t *testing.T) {
	t.Helper()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	homeDir := filepath.Join(tmpDir, "home")

	t.Setenv("VENVTERM_CONFIG_DIR", configDir)
	t.Setenv("HOME", homeDir)

	// Keep the shell detectors deterministic regardless of the host.
	t.Setenv("SHELL", "/bin/bash")

	for _, dir := range []string{configDir, homeDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}
}
