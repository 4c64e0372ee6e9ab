//go:build windows

package app

import (
	"os"
	"os/exec"
)

// RestartProcess replaces the running service with a fresh copy. Windows
// has no exec, so a child process is spawned and the parent exits.
// RestartProcess 用新副本替换当前服务。Windows 没有 exec，
// 因此先拉起子进程再退出父进程。
func RestartProcess(argv0 string, args []string, env []string) error {
	child := exec.Command(argv0, args[1:]...)
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = env
	if err := child.Start(); err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
