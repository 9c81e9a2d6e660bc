package terminal

import (
	"context"
	"strings"

	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/shell"
)

// ActivationSource yields the activation commands safe to run in a terminal
// shell. A nil result means no activation applies.
type ActivationSource interface {
	EnvironmentActivationShellCommands(ctx context.Context, resource string, target shell.Type) ([]string, error)
}

// Helper combines terminal creation, shell identification and activation
// into one surface for callers that drive a terminal end to end.
type Helper struct {
	service    Service
	chain      *shell.Chain
	activation ActivationSource
	log        logging.Logger
}

// NewHelper creates a Helper. The activation source may be nil when the
// caller only needs command building and shell identification.
func NewHelper(service Service, chain *shell.Chain, activation ActivationSource, log logging.Logger) *Helper {
	if log == nil {
		log = logging.Nop()
	}
	return &Helper{service: service, chain: chain, activation: activation, log: log}
}

// BuildCommand formats command and args for execution in the target shell.
// The command path is quoted when it contains whitespace; args are appended
// space-joined only when present. PowerShell flavors need the call operator
// to run a quoted path.
func BuildCommand(target shell.Type, command string, args []string) string {
	line := shell.CommandArgument(command)
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	if target.IsPowerShell() {
		return "& " + line
	}
	return line
}

// BuildCommand formats command and args for the target shell.
func (h *Helper) BuildCommand(target shell.Type, command string, args []string) string {
	return BuildCommand(target, command, args)
}

// CreateTerminal creates a terminal titled title; empty means unnamed.
func (h *Helper) CreateTerminal(title string) (Terminal, error) {
	return h.service.CreateTerminal(Options{Name: title})
}

// IdentifyTerminalShell runs the detector chain against the terminal.
func (h *Helper) IdentifyTerminalShell(telemetry *shell.Telemetry, term shell.Terminal) shell.Type {
	return h.chain.Identify(telemetry, term)
}

// ActivationCommands returns the activation commands to send to a terminal
// running the target shell, or nil when activation does not apply.
func (h *Helper) ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	if h.activation == nil {
		return nil, nil
	}
	return h.activation.EnvironmentActivationShellCommands(ctx, resource, target)
}
