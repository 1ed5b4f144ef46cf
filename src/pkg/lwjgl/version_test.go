package lwjgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscoverVersion(t *testing.T) {
	tests := []struct {
		version string
		want    int
	}{
		{"17w43b", 3},
		{"17w43a", 3},
		{"17w42b", 2},
		{"16w50a", 2},
		{"18w01a", 3},
		{"1.12.2", 2},
		{"1.13.0", 3},
		{"1.13", 3},
		{"1.7.10", 2},
		{"1.20.1", 3},
		{"1.8.9", 2},
		{"Legacy Minecraft", 2},
		{"", 2},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscoverVersion(tt.version))
		})
	}
}

func TestExtractInts(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"1.20.1", []int{1, 20, 1}},
		{"17w43b", []int{17, 43}},
		{"Legacy Minecraft", nil},
		{"3", []int{3}},
		{"v1x13", []int{1, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, extractInts(tt.input))
		})
	}
}
