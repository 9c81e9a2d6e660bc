package shell

import "testing"

func TestFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Type
	}{
		{"bash absolute", "/bin/bash", Bash},
		{"sh maps to bash", "/bin/sh", Bash},
		{"zsh", "/usr/bin/zsh", Zsh},
		{"fish", "/usr/local/bin/fish", Fish},
		{"ksh", "/bin/ksh", Ksh},
		{"csh", "/bin/csh", CShell},
		{"tcsh", "/bin/tcsh", CShell},
		{"cmd windows path", `C:\WINDOWS\System32\cmd.exe`, Cmd},
		{"powershell", `C:\WINDOWS\System32\WindowsPowerShell\v1.0\powershell.exe`, PowerShell},
		{"pwsh", "pwsh", PowerShellCore},
		{"pwsh exe", `C:\Program Files\PowerShell\7\pwsh.exe`, PowerShellCore},
		{"gitbash", `C:\Program Files\Git\bin\gitbash.exe`, Gitbash},
		{"wsl", `C:\WINDOWS\System32\wsl.exe`, Wsl},
		{"bare name", "bash", Bash},
		{"uppercase exe", `CMD.EXE`, Cmd},
		{"unknown binary", "/usr/bin/python", Unknown},
		{"empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromPath(tt.path); got != tt.want {
				t.Errorf("FromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}
