//go:build windows

package portfinder

import (
	"syscall"
	"testing"

	"golang.org/x/sys/windows"
)

// TestAddrInUseWinsock matches the Winsock busy-port error.
func TestAddrInUseWinsock(t *testing.T) {
	if !addrInUse(bindErr(5000, syscall.Errno(windows.WSAEADDRINUSE))) {
		t.Fatalf("expected WSAEADDRINUSE to match")
	}
}
