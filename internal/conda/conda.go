// Package conda detects conda environments from interpreter paths.
package conda

import (
	"context"
	"os"
	"path/filepath"

	"github.com/venvterm/venvterm/internal/logging"
)

// metaDirName marks the root of a conda environment.
const metaDirName = "conda-meta"

// maxLookupDepth bounds the walk from the interpreter towards the
// filesystem root. Interpreters live at <env>/python.exe on Windows and
// <env>/bin/python elsewhere, so two levels cover both layouts.
const maxLookupDepth = 2

// Service answers whether an interpreter belongs to a conda environment.
type Service struct {
	log logging.Logger
}

// NewService creates a conda detection service.
func NewService(log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{log: log}
}

// IsEnvironment reports whether the interpreter path lives inside a conda
// environment, identified by a conda-meta directory next to or one level
// above the interpreter. An empty path is simply not a conda environment.
func (s *Service) IsEnvironment(ctx context.Context, interpreterPath string) (bool, error) {
	if interpreterPath == "" {
		return false, nil
	}

	dir := filepath.Dir(interpreterPath)
	for depth := 0; depth < maxLookupDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		meta := filepath.Join(dir, metaDirName)
		if info, err := os.Stat(meta); err == nil && info.IsDir() {
			s.log.Debug("conda environment detected", "interpreter", interpreterPath, "root", dir)
			return true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return false, nil
}

// EnvironmentRoot returns the conda environment root for an interpreter,
// or empty when the interpreter is not inside a conda environment.
func (s *Service) EnvironmentRoot(ctx context.Context, interpreterPath string) (string, error) {
	if interpreterPath == "" {
		return "", nil
	}

	dir := filepath.Dir(interpreterPath)
	for depth := 0; depth < maxLookupDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		meta := filepath.Join(dir, metaDirName)
		if info, err := os.Stat(meta); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// EnvironmentName derives the name to pass to conda's activate command.
// Environments under an "envs" directory activate by name; anything else
// (including the base installation) activates by full path.
func EnvironmentName(envRoot string) string {
	if envRoot == "" {
		return ""
	}
	if filepath.Base(filepath.Dir(envRoot)) == "envs" {
		return filepath.Base(envRoot)
	}
	return envRoot
}
