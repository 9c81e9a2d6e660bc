package shell

import (
	"path/filepath"
	"strings"
)

// FromPath extracts the shell type from a shell binary path or terminal name
// Examples:
//   - /bin/bash -> bash
//   - C:\WINDOWS\System32\cmd.exe -> cmd
//   - pwsh -> powershellCore
func FromPath(shellPath string) Type {
	name := normalizeShellName(shellPath)

	switch name {
	case "bash", "sh", "dash":
		return Bash
	case "gitbash", "git-bash":
		return Gitbash
	case "wsl":
		return Wsl
	case "zsh":
		return Zsh
	case "ksh", "mksh":
		return Ksh
	case "fish":
		return Fish
	case "csh", "tcsh":
		return CShell
	case "pwsh", "pwsh-preview", "powershell-core":
		return PowerShellCore
	case "powershell":
		return PowerShell
	case "cmd", "command":
		return Cmd
	default:
		return Unknown
	}
}

// normalizeShellName reduces a path or display name to a comparable
// executable name: base name, lowercase, no .exe suffix.
// Windows paths are handled even when running elsewhere.
func normalizeShellName(shellPath string) string {
	name := shellPath
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	} else {
		name = filepath.Base(name)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, ".exe")
	return name
}
