// Package shell identifies terminal shells and manages venvterm's shell
// integration.
//
// # Shell Identification
//
// Identification runs through a chain of detectors, each examining one
// signal:
//
//  1. user settings (terminal.shell_path), highest priority
//  2. environment variables ($SHELL, ComSpec)
//  3. parent process executable name
//  4. terminal display name, lowest priority
//
// The chain short-circuits on the first detector that resolves a shell and
// records which source won into a Telemetry record, exactly once per pass.
//
// # RC File Integration
//
// The package also knows how to locate and safely modify shell rc files so
// new interactive shells pick up environment activation automatically:
//
//	# bash/zsh/ksh rc files get:
//	eval "$(venvterm activate bash)"
//
//	# fish config gets:
//	venvterm activate fish | source
//
// All rc modifications are idempotent, optionally backed up, and written
// atomically via temp file + rename.
package shell
