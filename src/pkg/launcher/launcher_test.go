//go:build !windows
// +build !windows

package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchMirrorsExitCode(t *testing.T) {
	code, err := Launch([]string{"sh", "-c", "exit 0"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = Launch([]string{"sh", "-c", "exit 7"})
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestLaunchNoArguments(t *testing.T) {
	code, err := Launch(nil)
	require.Error(t, err)
	assert.Equal(t, 1, code)
}

func TestLaunchMissingBinary(t *testing.T) {
	code, err := Launch([]string{"/nonexistent/definitely-not-a-binary"})
	require.Error(t, err)
	assert.Equal(t, 1, code)
}
