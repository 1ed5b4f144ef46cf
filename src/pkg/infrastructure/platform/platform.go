// Package platform resolves the normalized operating-system and
// CPU-architecture tags used by the LWJGL build repository file layout.
package platform

import (
	"runtime"
	"strings"
	"sync"
)

// Tag is the (os, arch) pair for the current host, computed once per process.
type Tag struct {
	OS   string
	Arch string
}

var osRename = map[string]string{
	"darwin": "macos",
}

var archRename = map[string]string{
	"i386":       "x86_64",
	"i686":       "x86_64",
	"386":        "x86_64",
	"aarch64":    "arm64",
	"aarch64_be": "arm64",
	"armv8b":     "arm64",
	"armv8l":     "arm64",
	"armv8":      "arm64",
	"armhf":      "arm32",
	"armv7b":     "arm32",
	"armv7l":     "arm32",
	"armv7":      "arm32",
	"arm":        "arm32",
	"amd64":      "x64",
	"amd32":      "x32",
}

// archIgnore holds architectures that carry no suffix in natives filenames.
var archIgnore = map[string]struct{}{
	"x86_64": {},
	"x32":    {},
}

var (
	hostOnce sync.Once
	hostTag  Tag
)

// Host returns the tag for the current host. Unknown raw values pass through
// unchanged so new platforms keep working without a table update.
func Host() Tag {
	hostOnce.Do(func() {
		hostTag = Normalize(runtime.GOOS, machine())
	})
	return hostTag
}

// Normalize applies the rename tables to a raw OS name and machine string.
func Normalize(rawOS, rawArch string) Tag {
	osName := strings.ToLower(rawOS)
	if renamed, ok := osRename[osName]; ok {
		osName = renamed
	}
	arch := strings.ToLower(rawArch)
	if renamed, ok := archRename[arch]; ok {
		arch = renamed
	}
	return Tag{OS: osName, Arch: arch}
}

// ArchIgnored reports whether the architecture is the "default" one for its
// OS and therefore omitted from natives filenames.
func (t Tag) ArchIgnored() bool {
	_, ok := archIgnore[t.Arch]
	return ok
}

// NativesSuffix is the platform qualifier embedded in natives jar filenames.
func (t Tag) NativesSuffix() string {
	if t.ArchIgnored() {
		return t.OS
	}
	return t.OS + "-" + t.Arch
}
