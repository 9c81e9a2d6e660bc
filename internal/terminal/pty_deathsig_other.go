//go:build !linux && !windows

package terminal

import "syscall"

// Pdeathsig is linux-only; elsewhere the process group teardown in Close
// has to do.
func setPtyDeathSignal(attr *syscall.SysProcAttr) {}
