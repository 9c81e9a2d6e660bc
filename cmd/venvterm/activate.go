package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/venvterm/venvterm/internal/activation"
)

const activateTimeout = 30 * time.Second

// runActivate handles the `venvterm activate <shell>` subcommand. The
// output is a sequence of shell commands, one per line, suitable for eval.
func runActivate(args []string) error {
	fs := flag.NewFlagSet("activate", flag.ContinueOnError)
	resource := fs.String("resource", "", "project directory whose settings apply (default: current directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: venvterm activate <shell>\nSupported shells: %s", supportedShellNames())
	}

	target, err := parseShellName(fs.Arg(0))
	if err != nil {
		return err
	}

	if *resource == "" {
		if wd, err := os.Getwd(); err == nil {
			*resource = wd
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), activateTimeout)
	defer cancel()

	log := newLogger()
	loader, err := newSettingsLoader(log)
	if err != nil {
		return err
	}

	service, err := activation.DefaultService(loader, log)
	if err != nil {
		return fmt.Errorf("create activation service: %w", err)
	}

	commands, err := service.EnvironmentActivationCommands(ctx, target, *resource)
	if err != nil {
		return fmt.Errorf("select activation commands: %w", err)
	}

	for _, command := range commands {
		fmt.Println(command)
	}
	return nil
}
