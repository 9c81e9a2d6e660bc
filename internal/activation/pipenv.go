package activation

import (
	"context"
	"path/filepath"

	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/shell"
)

// pipfileName marks a pipenv-managed project.
const pipfileName = "Pipfile"

// PipenvProvider activates pipenv-managed projects via `pipenv shell`.
type PipenvProvider struct {
	log logging.Logger
}

// NewPipenvProvider creates the pipenv provider.
func NewPipenvProvider(log logging.Logger) *PipenvProvider {
	if log == nil {
		log = logging.Nop()
	}
	return &PipenvProvider{log: log}
}

func (p *PipenvProvider) Name() string { return "pipenv" }

// IsShellSupported reports support for every concrete shell; pipenv spawns
// its own subshell and works anywhere pipenv itself runs.
func (p *PipenvProvider) IsShellSupported(target shell.Type) bool {
	return target.IsValid()
}

// ActivationCommands emits `pipenv shell` when the resource directory holds
// a Pipfile. Without a resource there is no project to activate.
func (p *PipenvProvider) ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	if resource == "" {
		return nil, nil
	}
	if !fileExists(filepath.Join(resource, pipfileName)) {
		return nil, nil
	}

	p.log.Debug("pipenv activation", "resource", resource)
	return []string{"pipenv shell"}, nil
}
