package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRCFilePath(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	tests := []struct {
		shell   Type
		want    string
		wantErr bool
	}{
		{Bash, filepath.Join(tmpHome, ".bashrc"), false},
		{Zsh, filepath.Join(tmpHome, ".zshrc"), false},
		{Ksh, filepath.Join(tmpHome, ".kshrc"), false},
		{CShell, filepath.Join(tmpHome, ".cshrc"), false},
		{Fish, filepath.Join(tmpHome, ".config", "fish", "config.fish"), false},
		{Cmd, "", true},
		{Unknown, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			got, err := RCFilePath(tt.shell)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("RCFilePath(%s) expected error, got %q", tt.shell, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("RCFilePath(%s) failed: %v", tt.shell, err)
			}
			if got != tt.want {
				t.Errorf("RCFilePath(%s) = %q, want %q", tt.shell, got, tt.want)
			}
		})
	}
}

func TestHasHookLine(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"empty file", "", false},
		{"unrelated content", "export PATH=$PATH:/usr/local/bin\n", false},
		{"eval hook", `eval "$(venvterm activate bash)"` + "\n", true},
		{"fish hook", "venvterm activate fish | source\n", true},
		{"indented hook", `    eval "$(venvterm activate zsh)"` + "\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rcPath := filepath.Join(tmpDir, strings.ReplaceAll(tt.name, " ", "_"))
			if err := os.WriteFile(rcPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := HasHookLine(rcPath)
			if err != nil {
				t.Fatalf("HasHookLine failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasHookLine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasHookLineMissingFile(t *testing.T) {
	got, err := HasHookLine(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("HasHookLine on missing file should not error: %v", err)
	}
	if got {
		t.Error("missing file cannot contain a hook")
	}
}

func TestAddHookLine(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	if err := os.WriteFile(rcPath, []byte("# existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	hook := `eval "$(venvterm activate bash)"`
	if err := AddHookLine(rcPath, hook); err != nil {
		t.Fatalf("AddHookLine failed: %v", err)
	}

	content, err := os.ReadFile(rcPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "# existing") {
		t.Error("existing content must be preserved")
	}
	if !strings.Contains(string(content), hook) {
		t.Error("hook line must be appended")
	}
}

func TestAddHookLineNoTrailingNewline(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	if err := os.WriteFile(rcPath, []byte("setopt autocd"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := AddHookLine(rcPath, "venvterm activate zsh"); err != nil {
		t.Fatalf("AddHookLine failed: %v", err)
	}

	content, _ := os.ReadFile(rcPath)
	if strings.Contains(string(content), "autocd\n\n# venvterm") == false &&
		strings.Contains(string(content), "autocd\n") == false {
		t.Errorf("missing newline between old content and hook: %q", content)
	}
}

func TestBackupRCFile(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	original := "# my config\n"
	if err := os.WriteFile(rcPath, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	backupPath, err := BackupRCFile(rcPath)
	if err != nil {
		t.Fatalf("BackupRCFile failed: %v", err)
	}
	if backupPath != rcPath+BackupSuffix {
		t.Errorf("backup path = %q, want %q", backupPath, rcPath+BackupSuffix)
	}

	content, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != original {
		t.Errorf("backup content = %q, want %q", content, original)
	}
}

func TestCreateRCFile(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".config", "fish", "config.fish")
	if err := CreateRCFile(rcPath); err != nil {
		t.Fatalf("CreateRCFile failed: %v", err)
	}

	exists, err := RCFileExists(rcPath)
	if err != nil || !exists {
		t.Errorf("created rc file should exist: exists=%v err=%v", exists, err)
	}
}
