package shell

import (
	"os"
	"strings"
	"testing"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chain := NewChain(nil, &stubDetector{name: "stub", priority: 1, result: Bash})
	return NewManager(chain, nil)
}

func TestSetupIntegrationAddsHook(t *testing.T) {
	m := setupManager(t)

	result, err := m.SetupIntegration(Bash, SetupOptions{})
	if err != nil {
		t.Fatalf("SetupIntegration failed: %v", err)
	}
	if !result.Added {
		t.Error("hook should have been added")
	}
	if result.AlreadyPresent {
		t.Error("fresh rc file cannot already contain the hook")
	}

	content, err := os.ReadFile(result.RCFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), HookMarker) {
		t.Errorf("rc file missing hook: %q", content)
	}
}

func TestSetupIntegrationIdempotent(t *testing.T) {
	m := setupManager(t)

	if _, err := m.SetupIntegration(Bash, SetupOptions{}); err != nil {
		t.Fatal(err)
	}
	second, err := m.SetupIntegration(Bash, SetupOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if second.Added {
		t.Error("second setup must not add the hook again")
	}
	if !second.AlreadyPresent {
		t.Error("second setup should report the hook as present")
	}

	content, _ := os.ReadFile(second.RCFile)
	if got := strings.Count(string(content), HookMarker); got != 1 {
		t.Errorf("hook appears %d times, want 1", got)
	}
}

func TestSetupIntegrationDryRun(t *testing.T) {
	m := setupManager(t)

	result, err := m.SetupIntegration(Zsh, SetupOptions{DryRun: true})
	if err != nil {
		t.Fatalf("SetupIntegration dry-run failed: %v", err)
	}
	if result.Added {
		t.Error("dry-run must report nothing added")
	}
	if _, statErr := os.Stat(result.RCFile); !os.IsNotExist(statErr) {
		t.Error("dry-run must not create the rc file")
	}
}

func TestSetupIntegrationBackup(t *testing.T) {
	m := setupManager(t)

	// First run creates the rc file, second run forces with backup.
	if _, err := m.SetupIntegration(Bash, SetupOptions{}); err != nil {
		t.Fatal(err)
	}
	result, err := m.SetupIntegration(Bash, SetupOptions{Force: true, Backup: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.BackupPath == "" {
		t.Fatal("forced setup with backup should produce a backup path")
	}
	if _, err := os.Stat(result.BackupPath); err != nil {
		t.Errorf("backup file missing: %v", err)
	}
}

func TestSetupIntegrationUnsupportedShell(t *testing.T) {
	m := setupManager(t)

	_, err := m.SetupIntegration(Cmd, SetupOptions{})
	if err == nil {
		t.Fatal("cmd has no rc file, expected error")
	}
	if _, ok := err.(*UnsupportedShellError); !ok {
		t.Errorf("expected UnsupportedShellError, got %T", err)
	}
}

func TestDetectAndSetup(t *testing.T) {
	m := setupManager(t)

	result, err := m.DetectAndSetup(SetupOptions{})
	if err != nil {
		t.Fatalf("DetectAndSetup failed: %v", err)
	}
	if result.Shell != Bash {
		t.Errorf("detected shell = %s, want %s", result.Shell, Bash)
	}
}

func TestDetectAndSetupUnknownShell(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chain := NewChain(nil, &stubDetector{name: "stub", priority: 1, result: Unknown})
	m := NewManager(chain, nil)

	if _, err := m.DetectAndSetup(SetupOptions{}); err == nil {
		t.Fatal("unknown shell must fail setup")
	}
}

func TestHookCommand(t *testing.T) {
	tests := []struct {
		shell   Type
		want    string
		wantErr bool
	}{
		{Bash, `eval "$(venvterm activate bash)"`, false},
		{Zsh, `eval "$(venvterm activate zsh)"`, false},
		{Fish, "venvterm activate fish | source", false},
		{CShell, "eval `venvterm activate cshell`", false},
		{Cmd, "", true},
		{PowerShell, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			got, err := HookCommand(tt.shell)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("HookCommand(%s) expected error", tt.shell)
				}
				return
			}
			if err != nil {
				t.Fatalf("HookCommand(%s) failed: %v", tt.shell, err)
			}
			if got != tt.want {
				t.Errorf("HookCommand(%s) = %q, want %q", tt.shell, got, tt.want)
			}
		})
	}
}
