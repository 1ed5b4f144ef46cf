//go:build windows
// +build windows

package platform

import "runtime"

func machine() string {
	return runtime.GOARCH
}
