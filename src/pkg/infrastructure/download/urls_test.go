package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLWJGLURL(t *testing.T) {
	assert.Equal(t,
		"https://build.lwjgl.org/release/latest/bin/lwjgl/lwjgl.jar",
		LWJGLURL("bin/lwjgl/lwjgl.jar", "", ""))

	assert.Equal(t,
		"https://build.lwjgl.org/release/3.3.2/bin/lwjgl-glfw/lwjgl-glfw.jar",
		LWJGLURL("bin/lwjgl-glfw/lwjgl-glfw.jar", "3.3.2", "release"))
}

func TestRawGitHubURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/CoolCat467/fix-lwjgl/HEAD/README.md",
		RawGitHubURL("CoolCat467", "fix-lwjgl", "HEAD", "README.md"))
}
