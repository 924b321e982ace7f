//go:build windows

package supervisor

import (
	"os/exec"
	"syscall"
)

// setProcessGroup is a no-op on Windows; there is no process group to
// create for signal delivery.
func setProcessGroup(cmd *exec.Cmd) {}

// signalGroup approximates group signaling on Windows. There is no
// SIGINT delivery to another process, so any signal escalates to Kill.
func signalGroup(cmd *exec.Cmd, sig syscall.Signal) error {
	return cmd.Process.Kill()
}
