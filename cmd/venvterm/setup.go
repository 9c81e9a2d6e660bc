package main

import (
	"flag"
	"fmt"

	"github.com/venvterm/venvterm/internal/shell"
)

// runSetup handles the `venvterm setup` subcommand: it adds the activation
// hook to the shell's rc file, detecting the shell unless one is named.
func runSetup(args []string) error {
	fs := flag.NewFlagSet("setup", flag.ContinueOnError)
	shellName := fs.String("shell", "", "shell to set up (default: detect)")
	force := fs.Bool("force", false, "add the hook even if one is already present")
	noBackup := fs.Bool("no-backup", false, "skip the rc file backup")
	dryRun := fs.Bool("dry-run", false, "show what would be done without changing anything")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger()
	loader, err := newSettingsLoader(log)
	if err != nil {
		return err
	}

	manager := shell.NewManager(shell.DefaultChain(loader, log), log)
	opts := shell.SetupOptions{
		Force:  *force,
		Backup: !*noBackup,
		DryRun: *dryRun,
	}

	var result *shell.SetupResult
	if *shellName != "" {
		target, err := parseShellName(*shellName)
		if err != nil {
			return err
		}
		result, err = manager.SetupIntegration(target, opts)
		if err != nil {
			return err
		}
	} else {
		result, err = manager.DetectAndSetup(opts)
		if err != nil {
			return err
		}
	}

	switch {
	case result.AlreadyPresent && !result.Added:
		fmt.Printf("Hook already present in %s, nothing to do.\n", result.RCFile)
	case *dryRun:
		fmt.Printf("Would add to %s:\n  %s\n", result.RCFile, result.HookCommand)
	default:
		fmt.Printf("Added to %s:\n  %s\n", result.RCFile, result.HookCommand)
		if result.BackupPath != "" {
			fmt.Printf("Backup written to %s\n", result.BackupPath)
		}
		fmt.Printf("Restart your %s session to pick up the change.\n", result.Shell.String())
	}
	return nil
}
