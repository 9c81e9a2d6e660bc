package activation

import (
	"context"
	"path/filepath"

	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/shell"
)

// CmdPromptProvider activates virtualenv/venv environments under cmd.exe
// and both PowerShell flavors.
type CmdPromptProvider struct {
	settings SettingsReader
	log      logging.Logger
}

// NewCmdPromptProvider creates the command prompt / PowerShell provider.
func NewCmdPromptProvider(settings SettingsReader, log logging.Logger) *CmdPromptProvider {
	if log == nil {
		log = logging.Nop()
	}
	return &CmdPromptProvider{settings: settings, log: log}
}

func (p *CmdPromptProvider) Name() string { return "cmdprompt" }

// IsShellSupported reports support for cmd and the PowerShell family.
func (p *CmdPromptProvider) IsShellSupported(target shell.Type) bool {
	return target == shell.Cmd || target.IsPowerShell()
}

// ActivationCommands runs the environment's activate.bat or Activate.ps1.
// PowerShell needs the call operator to invoke a quoted script path.
func (p *CmdPromptProvider) ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	settings, err := p.settings.Settings(ctx, resource)
	if err != nil {
		return nil, err
	}

	interpreter := ResolveInterpreter(settings, resource)
	if interpreter == "" {
		return nil, nil
	}

	scriptsDir := filepath.Dir(interpreter)

	if target == shell.Cmd {
		script := filepath.Join(scriptsDir, "activate.bat")
		if !fileExists(script) {
			return nil, nil
		}
		p.log.Debug("cmd activation", "script", script)
		return []string{shell.CommandArgument(script)}, nil
	}

	script := filepath.Join(scriptsDir, "Activate.ps1")
	if !fileExists(script) {
		return nil, nil
	}
	p.log.Debug("powershell activation", "script", script)
	return []string{"& " + shell.CommandArgument(script)}, nil
}
