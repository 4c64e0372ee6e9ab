//go:build !windows

package app

import (
	"syscall"
)

// RestartProcess replaces the running service with a fresh copy of the
// binary, keeping the same PID.
// RestartProcess 用二进制的新副本替换当前服务，PID 保持不变。
func RestartProcess(argv0 string, args []string, env []string) error {
	return syscall.Exec(argv0, args, env)
}
