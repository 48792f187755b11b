package utils

import (
	"os/exec"
	"syscall"
)

// StartDetachedProcess starts a process completely detached: it leads a
// new session with no controlling terminal, its standard streams are bound
// to the null device and it is never waited on. The pid is returned once
// the process has been started.
func StartDetachedProcess(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, err
	}

	return pid, nil
}
