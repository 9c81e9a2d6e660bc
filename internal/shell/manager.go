package shell

import (
	"github.com/venvterm/venvterm/internal/logging"
)

// SetupOptions holds options for shell integration setup
type SetupOptions struct {
	// Force skips duplicate detection and adds the hook unconditionally
	Force bool
	// Backup creates a backup of the rc file before modification
	Backup bool
	// DryRun shows what would be done without making changes
	DryRun bool
}

// SetupResult contains the result of shell integration setup
type SetupResult struct {
	// Shell is the detected or specified shell type
	Shell Type
	// RCFile is the path to the shell's configuration file
	RCFile string
	// Added indicates if the hook line was added
	Added bool
	// AlreadyPresent indicates if the hook was already configured
	AlreadyPresent bool
	// BackupPath is the path to the backup file (if created)
	BackupPath string
	// HookCommand is the command that was added
	HookCommand string
}

// Manager orchestrates shell integration setup
type Manager struct {
	chain *Chain
	log   logging.Logger
}

// NewManager creates a shell manager around a detector chain.
func NewManager(chain *Chain, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{chain: chain, log: log}
}

// SetupIntegration adds the venvterm hook to the rc file of the given shell.
func (m *Manager) SetupIntegration(shell Type, opts SetupOptions) (*SetupResult, error) {
	hookCmd, err := HookCommand(shell)
	if err != nil {
		return nil, err
	}

	rcPath, err := RCFilePath(shell)
	if err != nil {
		return nil, err
	}

	exists, err := RCFileExists(rcPath)
	if err != nil {
		return nil, err
	}

	if !exists && !opts.DryRun {
		if err := CreateRCFile(rcPath); err != nil {
			return nil, err
		}
	}

	hasHook, err := HasHookLine(rcPath)
	if err != nil {
		return nil, err
	}

	if hasHook && !opts.Force {
		m.log.Debug("hook already present", "rcfile", rcPath)
		return &SetupResult{
			Shell:          shell,
			RCFile:         rcPath,
			Added:          false,
			AlreadyPresent: true,
			HookCommand:    hookCmd,
		}, nil
	}

	var backupPath string
	if opts.Backup && exists {
		backupPath, err = BackupRCFile(rcPath)
		if err != nil {
			return nil, err
		}
	}

	if !opts.DryRun {
		if err := AddHookLine(rcPath, hookCmd); err != nil {
			return nil, err
		}
		m.log.Info("hook added", "rcfile", rcPath, "shell", shell.String())
	}

	return &SetupResult{
		Shell:          shell,
		RCFile:         rcPath,
		Added:          !opts.DryRun,
		AlreadyPresent: hasHook,
		BackupPath:     backupPath,
		HookCommand:    hookCmd,
	}, nil
}

// DetectAndSetup identifies the current shell and sets up integration for it.
func (m *Manager) DetectAndSetup(opts SetupOptions) (*SetupResult, error) {
	telemetry := &Telemetry{}
	detected := m.chain.Identify(telemetry, nil)
	if !detected.IsValid() {
		return nil, &UnsupportedShellError{Shell: detected.String()}
	}
	m.log.Debug("shell detected for setup",
		"shell", detected.String(),
		"source", telemetry.ShellIdentificationSource)
	return m.SetupIntegration(detected, opts)
}
