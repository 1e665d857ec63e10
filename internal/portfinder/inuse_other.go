//go:build !windows

package portfinder

import "syscall"

var inUseErrnos = []syscall.Errno{syscall.EADDRINUSE}
