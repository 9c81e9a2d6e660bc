package activation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/venvterm/venvterm/internal/config"
	"github.com/venvterm/venvterm/internal/shell"
)

// Provider builds the activation command sequence for shells it supports.
//
// A nil command slice means the provider has nothing to offer for this
// interpreter; a non-nil empty slice means activation is needed but no
// command has to run. Callers must preserve that distinction.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// IsShellSupported reports whether the provider can activate
	// environments for the given shell.
	IsShellSupported(target shell.Type) bool

	// ActivationCommands produces the commands to run in the terminal,
	// in order.
	ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error)
}

// SettingsReader loads the settings that apply to a resource.
// *config.Loader satisfies this.
type SettingsReader interface {
	Settings(ctx context.Context, resource string) (*config.Settings, error)
}

// ResolveInterpreter resolves the configured interpreter path against the
// resource directory. Absolute paths and bare command names pass through.
func ResolveInterpreter(settings *config.Settings, resource string) string {
	interpreter := settings.PythonPath
	if interpreter == "" || resource == "" {
		return interpreter
	}
	if filepath.IsAbs(interpreter) {
		return interpreter
	}
	// Bare commands like "python" resolve via PATH, not the resource
	if filepath.Base(interpreter) == interpreter {
		return interpreter
	}
	return filepath.Join(resource, interpreter)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
