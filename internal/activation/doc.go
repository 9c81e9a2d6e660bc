// Package activation selects and builds the shell commands that activate a
// Python environment in a terminal.
//
// Selection is a short-circuiting scan over providers ordered by priority:
// conda is consulted first and wins outright whenever the configured
// interpreter is a conda environment; otherwise the venv and cmd/PowerShell
// providers run ahead of the pyenv and pipenv providers, and the first
// provider returning a non-empty command sequence ends the scan. An empty
// (but non-nil) sequence from a non-conda provider means "nothing to run
// here" and the scan continues.
package activation
