// Package terminal builds shell-ready command lines and creates terminals
// backed by a pty. The Helper ties the pieces together: it identifies the
// shell running in a terminal, fetches the activation commands for it, and
// formats commands the way the target shell expects (PowerShell needs the
// call operator in front of a quoted executable path).
package terminal
