package shell

// Environment variable names used by venvterm shell integration
const (
	// EnvActive indicates venvterm activation ran in the current shell
	EnvActive = "VENVTERM_ACTIVE"

	// EnvDebug enables debug logging when set
	EnvDebug = "VENVTERM_DEBUG"
)

// Activation and backup markers
const (
	// HookMarker is the string that must appear in rc hook lines
	HookMarker = "venvterm activate"

	// BackupSuffix is the suffix for rc file backups
	BackupSuffix = ".venvterm-backup"
)
