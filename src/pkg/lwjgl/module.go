// Package lwjgl implements classpath rewriting and dependency resolution for
// the LWJGL modules Minecraft requires.
package lwjgl

import (
	"fmt"
	"strings"

	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/platform"
)

// Modules whose native library in the build repository does not follow the
// lib<name-with-underscores> convention.
var soNoPrefix = map[string]struct{}{
	"assimp":        {},
	"bgfx":          {},
	"draco":         {},
	"freetype":      {},
	"glfw":          {},
	"glfw_async":    {},
	"harfbuzz":      {},
	"hwloc":         {},
	"jemalloc":      {},
	"ktx":           {},
	"openal":        {},
	"openvr_api":    {},
	"openxr_loader": {},
	"opus":          {},
	"shaderc":       {},
	"spirv-cross":   {},
	"moltenvk":      {},
}

// Module is one LWJGL component, identified by name (e.g. "lwjgl-glfw").
// Everything else is derived from the name and the platform tag.
type Module struct {
	Name string
}

func (m Module) String() string {
	return m.Name
}

// JarName is the filename of the module's class jar.
func (m Module) JarName() string {
	return m.Name + ".jar"
}

// NativesJarName is the filename of the platform-qualified natives jar.
func (m Module) NativesJarName(tag platform.Tag) string {
	return fmt.Sprintf("%s-natives-%s.jar", m.Name, tag.NativesSuffix())
}

// SystemLibraryName is the shared-object/DLL filename the natives jar bundles.
// Currently unused by resolution: the JVM loads natives through its own
// library-path mechanism, so the jars suffice.
func (m Module) SystemLibraryName(tag platform.Tag) string {
	pre := "lib"
	ext := "so"
	switch tag.OS {
	case "macos":
		ext = "dylib"
	case "windows":
		pre = ""
		ext = "dll"
	}
	if !strings.Contains(m.Name, "-") {
		return pre + m.Name + "." + ext
	}
	base := strings.SplitN(m.Name, "-", 2)[1]
	if _, ok := soNoPrefix[strings.ToLower(base)]; ok {
		if tag.OS == "windows" && base == "openal" { // strange oddity
			base = "OpenAL"
		} else if tag.OS == "macos" && base == "moltenvk" {
			base = "MoltenVK"
		}
		return pre + base + "." + ext
	}
	return pre + strings.ReplaceAll(m.Name, "-", "_") + "." + ext
}

// Filenames are the cache filenames resolution expects for this module.
func (m Module) Filenames(tag platform.Tag) []string {
	return []string{
		m.JarName(),
		m.NativesJarName(tag),
	}
}

// RemotePaths are the build-repository-relative paths of Filenames.
func (m Module) RemotePaths(tag platform.Tag) []string {
	return []string{
		fmt.Sprintf("bin/%s/%s", m.Name, m.JarName()),
		fmt.Sprintf("bin/%s/%s", m.Name, m.NativesJarName(tag)),
	}
}
