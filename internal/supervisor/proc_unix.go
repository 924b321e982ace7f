//go:build unix

package supervisor

import (
	"os/exec"
	"syscall"
)

// setProcessGroup places the child in its own process group so that
// shutdown signals reach every process the shell indirection spawns.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// signalGroup delivers sig to the child's whole process group.
// Best effort: an error usually means the group is already gone.
func signalGroup(cmd *exec.Cmd, sig syscall.Signal) error {
	// Negative pid addresses the process group created at spawn.
	return syscall.Kill(-cmd.Process.Pid, sig)
}
