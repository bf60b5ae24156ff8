//go:build linux

package runtime

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// ChildProcAttr makes children receive SIGTERM when ytui dies.
func ChildProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Pdeathsig: unix.SIGTERM}
}
