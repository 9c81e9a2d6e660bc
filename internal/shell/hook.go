package shell

import "fmt"

// HookCommand generates the rc file hook line for a shell. The hook calls
// `venvterm activate` on shell startup so the environment activation
// commands are evaluated in the new session.
func HookCommand(shell Type) (string, error) {
	switch shell {
	case Bash, Gitbash, Wsl, Zsh, Ksh:
		// eval with command substitution
		return fmt.Sprintf(`eval "$(venvterm activate %s)"`, shell), nil
	case Fish:
		// Fish pipes to source
		return fmt.Sprintf("venvterm activate %s | source", shell), nil
	case CShell:
		return fmt.Sprintf("eval `venvterm activate %s`", shell), nil
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}
}
