package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/venvterm/venvterm/internal/logging"
)

// Options configures a new terminal. An empty Name means unnamed; an empty
// ShellPath falls back to the login shell of the environment.
type Options struct {
	Name      string
	ShellPath string
	Dir       string
	Env       []string
}

// Terminal is a running terminal session.
type Terminal interface {
	// Name returns the title the terminal was created with.
	Name() string
	// SendText writes a line of input to the terminal, as if typed.
	SendText(text string) error
	// Close tears the session down and releases the pty.
	Close() error
}

// Service creates terminals.
type Service interface {
	CreateTerminal(opts Options) (Terminal, error)
}

// PtyService runs terminals on a local pseudo-terminal.
type PtyService struct {
	log logging.Logger

	// start is swapped out in tests.
	start func(opts Options, command string, args ...string) (Pty, *exec.Cmd, error)
}

// NewPtyService creates a pty-backed terminal service.
func NewPtyService(log logging.Logger) *PtyService {
	if log == nil {
		log = logging.Nop()
	}
	return &PtyService{log: log, start: startPty}
}

// CreateTerminal starts the shell from opts on a fresh pty.
func (s *PtyService) CreateTerminal(opts Options) (Terminal, error) {
	shellPath := opts.ShellPath
	if shellPath == "" {
		shellPath = defaultShellPath()
	}

	p, cmd, err := s.start(opts, shellPath)
	if err != nil {
		return nil, fmt.Errorf("starting terminal shell %q: %w", shellPath, err)
	}

	s.log.Debug("terminal created", "name", opts.Name, "shell", shellPath)
	return &PtyTerminal{name: opts.Name, pty: p, cmd: cmd}, nil
}

// PtyTerminal is a terminal session attached to a local pty.
type PtyTerminal struct {
	name string
	pty  Pty
	cmd  *exec.Cmd
}

func (t *PtyTerminal) Name() string { return t.name }

// SendText writes text followed by a newline so the shell executes it.
func (t *PtyTerminal) SendText(text string) error {
	if _, err := t.pty.Write([]byte(text + "\n")); err != nil {
		return fmt.Errorf("sending text to terminal: %w", err)
	}
	return nil
}

// Read streams the terminal's output.
func (t *PtyTerminal) Read(p []byte) (int, error) {
	return t.pty.Read(p)
}

// Write passes raw input through to the terminal, without the newline
// SendText appends. Used for interactive sessions.
func (t *PtyTerminal) Write(p []byte) (int, error) {
	return t.pty.Write(p)
}

// Resize adjusts the pty window size.
func (t *PtyTerminal) Resize(cols, rows uint16) error {
	return t.pty.Resize(cols, rows)
}

// Wait blocks until the shell process exits.
func (t *PtyTerminal) Wait() error {
	if t.cmd == nil {
		return nil
	}
	return t.cmd.Wait()
}

func (t *PtyTerminal) Close() error {
	return t.pty.Close()
}

// defaultShellPath picks the shell to run when none is configured.
func defaultShellPath() string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("ComSpec"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}
