package config

import (
	"context"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/venvterm/venvterm/internal/platform"
)

// Parser parses Lua settings files with platform detection injected.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a settings parser with the given platform detector.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseString parses settings from a Lua string.
// Useful for testing and in-memory settings generation.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Settings, error) {
	L := newSandboxedVM()
	defer L.Close()

	// Detect platform and inject the platform table
	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractSettings(L)
}

// ParseError represents a settings parsing error with a friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractSettings extracts the settings from a Lua state.
// It expects a global "venvterm" table; absent keys keep their defaults.
func extractSettings(L *lua.LState) (*Settings, error) {
	root := L.GetGlobal("venvterm")
	if root.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'venvterm' table",
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}

	settings := DefaultSettings()
	table := root.(*lua.LTable)

	if pathVal := table.RawGetString("python_path"); pathVal.Type() == lua.LTString {
		settings.PythonPath = pathVal.String()
	}

	if termVal := table.RawGetString("terminal"); termVal.Type() == lua.LTTable {
		extractTerminal(termVal.(*lua.LTable), &settings.Terminal)
	}

	if err := settings.Validate(); err != nil {
		return nil, &ParseError{
			Message: "settings validation failed",
			Detail:  err.Error(),
		}
	}

	return settings, nil
}

// extractTerminal fills the terminal sub-settings from a Lua table.
func extractTerminal(table *lua.LTable, terminal *TerminalSettings) {
	if actVal := table.RawGetString("activate_environment"); actVal.Type() == lua.LTBool {
		terminal.ActivateEnvironment = bool(actVal.(lua.LBool))
	}

	if shellVal := table.RawGetString("shell_path"); shellVal.Type() == lua.LTString {
		terminal.ShellPath = shellVal.String()
	}

	if titleVal := table.RawGetString("title"); titleVal.Type() == lua.LTString {
		terminal.Title = titleVal.String()
	}
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show friendly message.
func FormatError(err error, verbose bool) string {
	if parseErr, ok := err.(*ParseError); ok {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
