package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/venvterm/venvterm/internal/activation"
	"github.com/venvterm/venvterm/internal/shell"
	"github.com/venvterm/venvterm/internal/terminal"
)

// sessionEnv is the extra environment for shells spawned by `venvterm run`,
// marking the session as already activated so rc hooks can skip themselves.
func sessionEnv() []string {
	return []string{shell.EnvActive + "=1"}
}

// runTerminal handles the `venvterm run` subcommand: it opens the user's
// shell on a pty, sends the activation commands for the detected shell, and
// then hands the session over to the user.
func runTerminal(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	resource := fs.String("resource", "", "project directory whose settings apply (default: current directory)")
	title := fs.String("title", "Python", "terminal title")
	noActivate := fs.Bool("no-activate", false, "skip environment activation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *resource == "" {
		if wd, err := os.Getwd(); err == nil {
			*resource = wd
		}
	}

	ctx := context.Background()
	log := newLogger()
	loader, err := newSettingsLoader(log)
	if err != nil {
		return err
	}

	chain := shell.DefaultChain(loader, log)
	telemetry := &shell.Telemetry{}
	detected := chain.Identify(telemetry, nil)
	log.Debug("shell detected", "shell", detected.String(), "source", telemetry.ShellIdentificationSource)

	svc := terminal.NewPtyService(log)
	created, err := svc.CreateTerminal(terminal.Options{
		Name:      *title,
		ShellPath: loader.TerminalShellPath(),
		Dir:       *resource,
		Env:       sessionEnv(),
	})
	if err != nil {
		return err
	}
	term, ok := created.(*terminal.PtyTerminal)
	if !ok {
		return fmt.Errorf("terminal service returned an unexpected terminal type")
	}
	defer term.Close()

	if !*noActivate {
		service, err := activation.DefaultService(loader, log)
		if err != nil {
			return fmt.Errorf("create activation service: %w", err)
		}
		commands, err := service.EnvironmentActivationShellCommands(ctx, *resource, detected)
		if err != nil {
			return fmt.Errorf("select activation commands: %w", err)
		}
		for _, command := range commands {
			if err := term.SendText(command); err != nil {
				return err
			}
		}
	}

	go func() {
		_, _ = io.Copy(term, os.Stdin)
	}()
	_, _ = io.Copy(os.Stdout, term)

	return term.Wait()
}
