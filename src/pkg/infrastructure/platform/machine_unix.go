//go:build !windows
// +build !windows

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// machine returns the raw machine string from uname, e.g. "x86_64" or
// "armv7l". The kernel's name is what the LWJGL 2 fallback repository keys
// its directories on, so GOARCH alone is not enough here.
func machine() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOARCH
	}
	return unix.ByteSliceToString(uts.Machine[:])
}
