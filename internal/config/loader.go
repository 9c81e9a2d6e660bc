package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/venvterm/venvterm/internal/logging"
)

// Loader resolves and parses the settings that apply to a resource.
// Lookup order: <resource>/venvterm.lua, then the user configuration
// directory, then built-in defaults.
type Loader struct {
	parser  *Parser
	userDir string
	log     logging.Logger
}

// NewLoader creates a settings loader. The user configuration directory is
// taken from $VENVTERM_CONFIG_DIR, falling back to ~/.config/venvterm.
func NewLoader(parser *Parser, log logging.Logger) (*Loader, error) {
	if log == nil {
		log = logging.Nop()
	}

	userDir := os.Getenv(EnvConfigDir)
	if userDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		userDir = filepath.Join(homeDir, ".config", "venvterm")
	}

	return &Loader{parser: parser, userDir: userDir, log: log}, nil
}

// Settings loads the settings for a resource. An empty resource loads the
// user settings only. A missing file is not an error; a present file that
// fails to parse is.
func (l *Loader) Settings(ctx context.Context, resource string) (*Settings, error) {
	if resource != "" {
		settings, found, err := l.parseFile(ctx, filepath.Join(resource, SettingsFileName))
		if err != nil {
			return nil, err
		}
		if found {
			return settings, nil
		}
	}

	settings, found, err := l.parseFile(ctx, filepath.Join(l.userDir, SettingsFileName))
	if err != nil {
		return nil, err
	}
	if found {
		return settings, nil
	}

	l.log.Debug("no settings file found, using defaults", "resource", resource)
	return DefaultSettings(), nil
}

// TerminalShellPath reports the configured shell path for the current user,
// empty when nothing is configured or the settings cannot be read. This
// satisfies the shell detector's settings source contract, where a broken
// settings file must degrade to "not configured" rather than fail detection.
func (l *Loader) TerminalShellPath() string {
	settings, err := l.Settings(context.Background(), "")
	if err != nil {
		l.log.Warn("ignoring unreadable settings during shell detection", "error", err)
		return ""
	}
	return settings.Terminal.ShellPath
}

// parseFile loads and parses one settings file. The second return value
// reports whether the file existed.
func (l *Loader) parseFile(ctx context.Context, path string) (*Settings, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read settings file %s: %w", path, err)
	}

	settings, err := l.parser.ParseString(ctx, string(content))
	if err != nil {
		return nil, true, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	l.log.Debug("settings loaded", "path", path)
	return settings, true, nil
}
