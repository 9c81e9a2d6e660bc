package activation

import (
	"context"

	"github.com/venvterm/venvterm/internal/conda"
	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/shell"
)

// CondaProvider activates conda environments. It is consulted ahead of all
// other providers and its result is returned verbatim: an empty command
// list is a valid "nothing to run" answer and must not fall through.
type CondaProvider struct {
	settings SettingsReader
	conda    *conda.Service
	log      logging.Logger
}

// NewCondaProvider creates the conda provider.
func NewCondaProvider(settings SettingsReader, condaSvc *conda.Service, log logging.Logger) *CondaProvider {
	if log == nil {
		log = logging.Nop()
	}
	return &CondaProvider{settings: settings, conda: condaSvc, log: log}
}

func (p *CondaProvider) Name() string { return "conda" }

// IsShellSupported reports support for every concrete shell.
func (p *CondaProvider) IsShellSupported(target shell.Type) bool {
	return target.IsValid()
}

// ActivationCommands builds the conda activate command for the shell.
// PowerShell sessions get an empty sequence: conda's profile hook already
// activates there, so no terminal command is needed.
func (p *CondaProvider) ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	settings, err := p.settings.Settings(ctx, resource)
	if err != nil {
		return nil, err
	}

	interpreter := ResolveInterpreter(settings, resource)
	envRoot, err := p.conda.EnvironmentRoot(ctx, interpreter)
	if err != nil {
		return nil, err
	}
	if envRoot == "" {
		return nil, nil
	}

	envName := shell.CommandArgument(conda.EnvironmentName(envRoot))
	p.log.Debug("conda activation", "env", envName, "shell", target.String())

	switch {
	case target == shell.Cmd:
		return []string{"activate " + envName}, nil
	case target.IsPowerShell():
		return []string{}, nil
	case target == shell.Fish:
		return []string{"conda activate " + envName}, nil
	case target.IsPosix():
		return []string{"source activate " + envName}, nil
	default:
		return nil, nil
	}
}
