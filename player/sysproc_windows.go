//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

func detached() *syscall.SysProcAttr {
	return nil
}

func terminate(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
