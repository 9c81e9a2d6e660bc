package shell

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RCFilePath returns the path to the shell's rc file
func RCFilePath(shell Type) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	var rcPath string
	switch shell {
	case Bash, Gitbash, Wsl:
		rcPath = filepath.Join(homeDir, ".bashrc")
	case Zsh:
		rcPath = filepath.Join(homeDir, ".zshrc")
	case Ksh:
		rcPath = filepath.Join(homeDir, ".kshrc")
	case CShell:
		rcPath = filepath.Join(homeDir, ".cshrc")
	case Fish:
		rcPath = filepath.Join(homeDir, ".config", "fish", "config.fish")
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}

	return rcPath, nil
}

// RCFileExists checks if the rc file exists and is a regular file
func RCFileExists(rcPath string) (bool, error) {
	info, err := os.Stat(rcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &RCFileError{Path: rcPath, Message: "failed to stat file", Cause: err}
	}

	if !info.Mode().IsRegular() {
		return false, &RCFileError{Path: rcPath, Message: "not a regular file"}
	}

	return true, nil
}

// CreateRCFile creates a new rc file with its parent directory
func CreateRCFile(rcPath string) error {
	dir := filepath.Dir(rcPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &RCFileError{Path: rcPath, Message: "failed to create parent directory", Cause: err}
	}

	file, err := os.Create(rcPath)
	if err != nil {
		return &RCFileError{Path: rcPath, Message: "failed to create file", Cause: err}
	}
	defer file.Close()

	if _, err := file.WriteString("# Shell configuration\n"); err != nil {
		return &RCFileError{Path: rcPath, Message: "failed to write header", Cause: err}
	}

	return nil
}

// HasHookLine checks if the rc file already contains a venvterm hook
func HasHookLine(rcPath string) (bool, error) {
	file, err := os.Open(rcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &RCFileError{Path: rcPath, Message: "failed to open file", Cause: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Any variation of the hook counts
		if strings.Contains(line, HookMarker) {
			return true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return false, &RCFileError{Path: rcPath, Message: "failed to read file", Cause: err}
	}

	return false, nil
}

// BackupRCFile creates a backup copy of the rc file
func BackupRCFile(rcPath string) (string, error) {
	content, err := os.ReadFile(rcPath)
	if err != nil {
		return "", &RCFileError{Path: rcPath, Message: "failed to read file for backup", Cause: err}
	}

	backupPath := rcPath + BackupSuffix
	if err := os.WriteFile(backupPath, content, 0644); err != nil {
		return "", &RCFileError{Path: backupPath, Message: "failed to write backup file", Cause: err}
	}

	return backupPath, nil
}

// AddHookLine appends the venvterm hook to the rc file.
// This is an atomic operation using a temporary file.
func AddHookLine(rcPath string, hookCommand string) error {
	var existingContent []byte
	var err error

	if exists, _ := RCFileExists(rcPath); exists {
		existingContent, err = os.ReadFile(rcPath)
		if err != nil {
			return &RCFileError{Path: rcPath, Message: "failed to read existing file", Cause: err}
		}
	}

	// Temp file in the same directory so the rename stays atomic
	dir := filepath.Dir(rcPath)
	tmpFile, err := os.CreateTemp(dir, ".venvterm-tmp-*")
	if err != nil {
		return &RCFileError{Path: rcPath, Message: "failed to create temporary file", Cause: err}
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Clean up on error

	if len(existingContent) > 0 {
		if _, err := tmpFile.Write(existingContent); err != nil {
			tmpFile.Close()
			return &RCFileError{Path: rcPath, Message: "failed to write existing content", Cause: err}
		}

		if !strings.HasSuffix(string(existingContent), "\n") {
			if _, err := tmpFile.WriteString("\n"); err != nil {
				tmpFile.Close()
				return &RCFileError{Path: rcPath, Message: "failed to write newline", Cause: err}
			}
		}
	}

	hookSection := fmt.Sprintf("\n# venvterm - Python environment activation\n%s\n", hookCommand)
	if _, err := tmpFile.WriteString(hookSection); err != nil {
		tmpFile.Close()
		return &RCFileError{Path: rcPath, Message: "failed to write hook line", Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return &RCFileError{Path: rcPath, Message: "failed to sync file", Cause: err}
	}

	tmpFile.Close()

	if err := os.Rename(tmpPath, rcPath); err != nil {
		return &RCFileError{Path: rcPath, Message: "failed to rename temp file", Cause: err}
	}

	return nil
}
