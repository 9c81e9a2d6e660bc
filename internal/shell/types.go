package shell

import "fmt"

// Type represents a terminal shell
type Type string

const (
	// Bash represents the Bourne-again shell (also plain sh)
	Bash Type = "bash"
	// Cmd represents the Windows command prompt
	Cmd Type = "cmd"
	// PowerShell represents Windows PowerShell
	PowerShell Type = "powershell"
	// PowerShellCore represents cross-platform PowerShell (pwsh)
	PowerShellCore Type = "powershellCore"
	// Ksh represents the Korn shell
	Ksh Type = "ksh"
	// Zsh represents the Z shell
	Zsh Type = "zsh"
	// Fish represents the Fish shell
	Fish Type = "fish"
	// CShell represents the C shell family (csh, tcsh)
	CShell Type = "cshell"
	// Gitbash represents Git Bash on Windows
	Gitbash Type = "gitbash"
	// Wsl represents a Windows Subsystem for Linux terminal
	Wsl Type = "wsl"
	// Other represents a terminal running an unrecognized shell
	Other Type = "other"
	// Unknown represents a shell that could not be identified
	Unknown Type = "unknown"
)

// String returns the string representation of the shell type
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the shell type names a concrete shell
func (t Type) IsValid() bool {
	switch t {
	case Bash, Cmd, PowerShell, PowerShellCore, Ksh, Zsh, Fish, CShell, Gitbash, Wsl:
		return true
	default:
		return false
	}
}

// IsPowerShell returns true for both Windows PowerShell and PowerShell Core.
// Their invocation syntax requires the call operator for quoted paths.
func (t Type) IsPowerShell() bool {
	return t == PowerShell || t == PowerShellCore
}

// IsPosix returns true for shells that source activation scripts the
// Bourne-shell way.
func (t Type) IsPosix() bool {
	switch t {
	case Bash, Gitbash, Wsl, Ksh, Zsh, Fish, CShell:
		return true
	default:
		return false
	}
}

// Supported returns the concrete shell types venvterm understands.
func Supported() []Type {
	return []Type{Bash, Cmd, PowerShell, PowerShellCore, Ksh, Zsh, Fish, CShell, Gitbash, Wsl}
}

// UnsupportedShellError represents an unsupported shell error
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell: %s", e.Shell)
}

// RCFileError represents an error with shell rc file operations
type RCFileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *RCFileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rc file error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("rc file error (%s): %s", e.Path, e.Message)
}

func (e *RCFileError) Unwrap() error {
	return e.Cause
}
