// Package config provides Lua settings parsing and loading for venvterm.
//
// Settings files are plain Lua executed in a sandbox with platform
// detection injected, so values can vary by OS without templating.
package config

import (
	"fmt"
	"strings"
)

// SettingsFileName is the name of the per-resource and user settings file.
const SettingsFileName = "venvterm.lua"

// EnvConfigDir overrides the user configuration directory.
const EnvConfigDir = "VENVTERM_CONFIG_DIR"

// Settings represents the complete venvterm configuration for one resource.
type Settings struct {
	// PythonPath is the configured Python interpreter, absolute or
	// relative to the resource directory.
	PythonPath string `json:"python_path,omitempty"`

	// Terminal holds terminal-specific settings.
	Terminal TerminalSettings `json:"terminal,omitempty"`
}

// TerminalSettings holds the terminal sub-table of the settings file.
type TerminalSettings struct {
	// ActivateEnvironment enables environment activation in new terminals
	ActivateEnvironment bool `json:"activate_environment"`

	// ShellPath forces a specific shell, bypassing detection
	ShellPath string `json:"shell_path,omitempty"`

	// Title is the display name for created terminals
	Title string `json:"title,omitempty"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		PythonPath: "python",
		Terminal: TerminalSettings{
			ActivateEnvironment: true,
		},
	}
}

// Validate checks the settings for values that cannot be used safely on a
// shell command line.
func (s *Settings) Validate() error {
	if err := validatePathValue("python_path", s.PythonPath); err != nil {
		return err
	}
	if err := validatePathValue("terminal.shell_path", s.Terminal.ShellPath); err != nil {
		return err
	}
	return nil
}

// validatePathValue rejects path settings containing control characters or
// newlines, which could smuggle extra shell commands.
func validatePathValue(field, value string) error {
	if value == "" {
		return nil
	}
	if strings.ContainsRune(value, 0) {
		return fmt.Errorf("%s contains a null byte", field)
	}
	for _, r := range value {
		if r < 0x20 && r != '\t' {
			return fmt.Errorf("%s contains control characters", field)
		}
	}
	return nil
}
