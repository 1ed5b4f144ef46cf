package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		rawOS   string
		rawArch string
		want    Tag
	}{
		{"darwin", "arm64", Tag{OS: "macos", Arch: "arm64"}},
		{"darwin", "x86_64", Tag{OS: "macos", Arch: "x86_64"}},
		{"linux", "x86_64", Tag{OS: "linux", Arch: "x86_64"}},
		{"linux", "aarch64", Tag{OS: "linux", Arch: "arm64"}},
		{"linux", "armv7l", Tag{OS: "linux", Arch: "arm32"}},
		{"linux", "i686", Tag{OS: "linux", Arch: "x86_64"}},
		{"windows", "amd64", Tag{OS: "windows", Arch: "x64"}},
		{"Linux", "ARMV8L", Tag{OS: "linux", Arch: "arm64"}},
		// Unknown values pass through unchanged.
		{"plan9", "riscv64", Tag{OS: "plan9", Arch: "riscv64"}},
	}

	for _, tt := range tests {
		t.Run(tt.rawOS+"/"+tt.rawArch, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.rawOS, tt.rawArch))
		})
	}
}

func TestNativesSuffix(t *testing.T) {
	assert.Equal(t, "linux", Tag{OS: "linux", Arch: "x86_64"}.NativesSuffix())
	assert.Equal(t, "windows", Tag{OS: "windows", Arch: "x32"}.NativesSuffix())
	assert.Equal(t, "linux-arm64", Tag{OS: "linux", Arch: "arm64"}.NativesSuffix())
	assert.Equal(t, "macos-arm64", Tag{OS: "macos", Arch: "arm64"}.NativesSuffix())
	assert.Equal(t, "windows-x64", Tag{OS: "windows", Arch: "x64"}.NativesSuffix())
}

func TestHostIsStable(t *testing.T) {
	first := Host()
	second := Host()
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.OS)
	assert.NotEmpty(t, first.Arch)
}
