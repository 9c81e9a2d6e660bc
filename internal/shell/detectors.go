package shell

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/venvterm/venvterm/internal/logging"
)

// SettingsSource exposes the user-configured terminal shell path, empty
// when nothing is configured.
type SettingsSource interface {
	TerminalShellPath() string
}

// SettingsDetector resolves the shell from an explicit user setting.
// It has the highest priority: a configured shell always wins.
type SettingsDetector struct {
	source SettingsSource
	log    logging.Logger
}

// NewSettingsDetector creates a detector backed by the given settings source.
func NewSettingsDetector(source SettingsSource, log logging.Logger) *SettingsDetector {
	if log == nil {
		log = logging.Nop()
	}
	return &SettingsDetector{source: source, log: log}
}

func (d *SettingsDetector) Name() string  { return SourceSettings }
func (d *SettingsDetector) Priority() int { return PrioritySettings }

// Identify maps the configured shell path to a shell type.
func (d *SettingsDetector) Identify(telemetry *Telemetry, terminal Terminal) Type {
	if d.source == nil {
		return Unknown
	}
	shellPath := d.source.TerminalShellPath()
	if shellPath == "" {
		return Unknown
	}
	identified := FromPath(shellPath)
	d.log.Debug("settings shell detection", "path", shellPath, "shell", identified.String())
	return identified
}

// EnvironmentDetector resolves the shell from environment variables:
// SHELL on posix systems, ComSpec on Windows.
type EnvironmentDetector struct {
	log logging.Logger
}

// NewEnvironmentDetector creates an environment variable detector.
func NewEnvironmentDetector(log logging.Logger) *EnvironmentDetector {
	if log == nil {
		log = logging.Nop()
	}
	return &EnvironmentDetector{log: log}
}

func (d *EnvironmentDetector) Name() string  { return SourceEnvironment }
func (d *EnvironmentDetector) Priority() int { return PriorityEnvironment }

// Identify maps $SHELL (or ComSpec on Windows) to a shell type.
func (d *EnvironmentDetector) Identify(telemetry *Telemetry, terminal Terminal) Type {
	shellPath := shellFromEnvironment()
	if shellPath == "" {
		return Unknown
	}
	identified := FromPath(shellPath)
	d.log.Debug("environment shell detection", "path", shellPath, "shell", identified.String())
	return identified
}

func shellFromEnvironment() string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("ComSpec"); comspec != "" {
			return comspec
		}
		return os.Getenv("COMSPEC")
	}
	return os.Getenv("SHELL")
}

// maxProcessAncestors bounds the walk up the process tree. The shell is
// normally the direct parent; one extra hop covers go run / test wrappers.
const maxProcessAncestors = 3

// ProcessDetector resolves the shell by walking up the process tree and
// matching ancestor executable names against known shells.
type ProcessDetector struct {
	log logging.Logger
}

// NewProcessDetector creates a parent-process detector.
func NewProcessDetector(log logging.Logger) *ProcessDetector {
	if log == nil {
		log = logging.Nop()
	}
	return &ProcessDetector{log: log}
}

func (d *ProcessDetector) Name() string  { return SourceProcess }
func (d *ProcessDetector) Priority() int { return PriorityProcess }

// Identify inspects the parent process chain. Lookup failures degrade to
// Unknown, never an error.
func (d *ProcessDetector) Identify(telemetry *Telemetry, terminal Terminal) Type {
	proc, err := process.NewProcess(int32(os.Getppid()))
	for hops := 0; hops < maxProcessAncestors && err == nil && proc != nil; hops++ {
		name, nameErr := proc.Name()
		if nameErr == nil {
			if identified := FromPath(name); identified != Unknown {
				d.log.Debug("process shell detection", "process", name, "shell", identified.String())
				return identified
			}
		}
		proc, err = proc.Parent()
	}
	return Unknown
}

// TerminalNameDetector resolves the shell from the terminal's display name.
// It has the lowest priority and, unlike the other detectors, classifies any
// named terminal: an unmatched name yields Other rather than Unknown.
type TerminalNameDetector struct {
	log logging.Logger
}

// NewTerminalNameDetector creates a terminal display name detector.
func NewTerminalNameDetector(log logging.Logger) *TerminalNameDetector {
	if log == nil {
		log = logging.Nop()
	}
	return &TerminalNameDetector{log: log}
}

func (d *TerminalNameDetector) Name() string  { return SourceTerminalName }
func (d *TerminalNameDetector) Priority() int { return PriorityTerminalName }

// Identify matches the terminal name against known shell filename patterns.
// Absence of a terminal handle yields Unknown immediately.
func (d *TerminalNameDetector) Identify(telemetry *Telemetry, terminal Terminal) Type {
	if terminal == nil {
		return Unknown
	}
	name := terminal.Name()
	if name == "" {
		return Unknown
	}
	identified := FromPath(name)
	if identified == Unknown {
		identified = Other
	}
	d.log.Debug("terminal name shell detection", "name", name, "shell", identified.String())
	return identified
}

// DefaultChain wires the standard detector set in its production order.
func DefaultChain(settings SettingsSource, log logging.Logger) *Chain {
	return NewChain(log,
		NewSettingsDetector(settings, log),
		NewEnvironmentDetector(log),
		NewProcessDetector(log),
		NewTerminalNameDetector(log),
	)
}
