package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("venvterm %s\n", Version)
			return
		case "detect":
			// Handle venvterm detect subcommand
			if err := runDetect(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "activate":
			// Handle venvterm activate subcommand
			if err := runActivate(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "setup":
			// Handle venvterm setup subcommand
			if err := runSetup(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "run":
			// Handle venvterm run subcommand
			if err := runTerminal(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Default: show help
	fmt.Println("venvterm - shell detection and Python environment activation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  venvterm --version            Show version information")
	fmt.Println("  venvterm detect               Report the detected shell and how it was found")
	fmt.Println("  venvterm activate <shell>     Print environment activation commands for a shell")
	fmt.Println("  venvterm setup [options]      Add the activation hook to your shell rc file")
	fmt.Println("  venvterm run [options]        Open a shell with the environment activated")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  VENVTERM_DEBUG                Enable debug logging when non-empty")
	fmt.Println("  VENVTERM_CONFIG_DIR           Override the user settings directory")
}
