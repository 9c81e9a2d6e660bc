package main

import (
	"fmt"

	"github.com/venvterm/venvterm/internal/config"
	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/platform"
	"github.com/venvterm/venvterm/internal/shell"
)

// newSettingsLoader wires the Lua settings loader with host platform
// conditionals enabled.
func newSettingsLoader(log logging.Logger) (*config.Loader, error) {
	parser := config.NewParser(platform.NewDetector())
	loader, err := config.NewLoader(parser, log)
	if err != nil {
		return nil, fmt.Errorf("create settings loader: %w", err)
	}
	return loader, nil
}

// parseShellName turns a user-supplied shell name or path into a shell type.
func parseShellName(name string) (shell.Type, error) {
	if st := shell.Type(name); st.IsValid() {
		return st, nil
	}
	if st := shell.FromPath(name); st.IsValid() {
		return st, nil
	}
	return shell.Unknown, fmt.Errorf("unsupported shell: %s\nSupported shells: %s", name, supportedShellNames())
}

func supportedShellNames() string {
	names := ""
	for i, st := range shell.Supported() {
		if i > 0 {
			names += ", "
		}
		names += st.String()
	}
	return names
}
