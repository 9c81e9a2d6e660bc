package activation

import (
	"context"
	"strings"

	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/shell"
)

// PyenvProvider activates pyenv-managed interpreters by pinning the shell
// to the interpreter's pyenv version.
type PyenvProvider struct {
	settings SettingsReader
	log      logging.Logger
}

// NewPyenvProvider creates the pyenv provider.
func NewPyenvProvider(settings SettingsReader, log logging.Logger) *PyenvProvider {
	if log == nil {
		log = logging.Nop()
	}
	return &PyenvProvider{settings: settings, log: log}
}

func (p *PyenvProvider) Name() string { return "pyenv" }

// IsShellSupported reports support for posix-style shells, where pyenv's
// shell integration works.
func (p *PyenvProvider) IsShellSupported(target shell.Type) bool {
	return target.IsPosix()
}

// ActivationCommands emits `pyenv shell <version>` when the interpreter
// lives under a pyenv versions directory.
func (p *PyenvProvider) ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	settings, err := p.settings.Settings(ctx, resource)
	if err != nil {
		return nil, err
	}

	version := pyenvVersion(ResolveInterpreter(settings, resource))
	if version == "" {
		return nil, nil
	}

	p.log.Debug("pyenv activation", "version", version)
	return []string{"pyenv shell " + shell.CommandArgument(version)}, nil
}

// pyenvVersion extracts the version component from interpreter paths of the
// form .../.pyenv/versions/<version>/bin/python. Both separator styles are
// handled so Windows paths parse on any host.
func pyenvVersion(interpreterPath string) string {
	if interpreterPath == "" {
		return ""
	}
	parts := strings.FieldsFunc(interpreterPath, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == ".pyenv" && parts[i+1] == "versions" && i+2 < len(parts) {
			return parts[i+2]
		}
	}
	return ""
}
