package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/venvterm/venvterm/internal/shell"
)

// runDetect handles the `venvterm detect` subcommand.
func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	quiet := fs.Bool("quiet", false, "print only the shell name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger()
	loader, err := newSettingsLoader(log)
	if err != nil {
		return err
	}

	chain := shell.DefaultChain(loader, log)
	telemetry := &shell.Telemetry{}
	detected := chain.Identify(telemetry, nil)

	if *quiet {
		fmt.Println(detected.String())
		return nil
	}

	fmt.Printf("Shell:  %s\n", detected.String())
	fmt.Printf("Source: %s\n", telemetry.ShellIdentificationSource)
	if detected == shell.Unknown {
		fmt.Fprintln(os.Stderr, "Could not identify the running shell; set terminal.shell_path in your settings to override detection.")
	}
	return nil
}
