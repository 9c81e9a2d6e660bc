package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/shell"
)

// newLogger builds the CLI logger. Debug logging goes to stderr and only
// when VENVTERM_DEBUG is set; otherwise everything is discarded so command
// output stays clean for shell eval.
func newLogger() logging.Logger {
	if os.Getenv(shell.EnvDebug) == "" {
		return logging.Nop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	zl, err := cfg.Build()
	if err != nil {
		return logging.Nop()
	}
	return logging.NewZapLogger(zl)
}
