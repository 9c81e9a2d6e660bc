package activation

import (
	"context"
	"path/filepath"

	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/shell"
)

// VenvPosixProvider activates virtualenv/venv environments in shells that
// source activation scripts the Bourne-shell way.
type VenvPosixProvider struct {
	settings SettingsReader
	log      logging.Logger
}

// NewVenvPosixProvider creates the posix venv provider.
func NewVenvPosixProvider(settings SettingsReader, log logging.Logger) *VenvPosixProvider {
	if log == nil {
		log = logging.Nop()
	}
	return &VenvPosixProvider{settings: settings, log: log}
}

func (p *VenvPosixProvider) Name() string { return "venv" }

// IsShellSupported reports support for every posix-style shell.
func (p *VenvPosixProvider) IsShellSupported(target shell.Type) bool {
	return target.IsPosix()
}

// ActivationCommands sources the environment's activate script. A missing
// script (no venv configured) yields nil, not an error.
func (p *VenvPosixProvider) ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	settings, err := p.settings.Settings(ctx, resource)
	if err != nil {
		return nil, err
	}

	interpreter := ResolveInterpreter(settings, resource)
	if interpreter == "" {
		return nil, nil
	}

	script := filepath.Join(filepath.Dir(interpreter), activateScriptFor(target))
	if !fileExists(script) {
		return nil, nil
	}

	p.log.Debug("venv activation", "script", script, "shell", target.String())
	return []string{"source " + shell.CommandArgument(script)}, nil
}

// activateScriptFor picks the venv activation script flavor for a shell.
func activateScriptFor(target shell.Type) string {
	switch target {
	case shell.Fish:
		return "activate.fish"
	case shell.CShell:
		return "activate.csh"
	default:
		return "activate"
	}
}
