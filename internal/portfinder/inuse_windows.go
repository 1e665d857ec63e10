//go:build windows

package portfinder

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// Winsock reports a busy port as WSAEADDRINUSE, not the POSIX errno.
var inUseErrnos = []syscall.Errno{syscall.Errno(windows.WSAEADDRINUSE), syscall.EADDRINUSE}
