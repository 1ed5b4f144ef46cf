package lwjgl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/CoolCat467/fix-lwjgl/src/print"
)

const libraryPathFlag = "-Dorg.lwjgl.librarypath="

// The placeholder used when the launcher supplies no --version flag; it has
// no digit runs so it classifies as LWJGL 2.
const legacyVersionPlaceholder = "Legacy Minecraft"

// RewriteArgs rewrites a full Java argument vector: locates the classpath,
// classifies the Minecraft version, rewrites the classpath entries and
// substitutes them back. Unrelated flags are never removed or reordered.
func (r *Resolver) RewriteArgs(ctx context.Context, args []string) ([]string, error) {
	classPathIdx := indexOf(args, "-cp")
	if classPathIdx < 0 || classPathIdx+1 >= len(args) {
		print.Erro("Missing classpath argument, skipping rewriting arguments!")
		return args, nil
	}

	rawVersion := legacyVersionPlaceholder
	if idx := indexOf(args, "--version"); idx >= 0 && idx+1 < len(args) {
		rawVersion = args[idx+1]
	}
	lwjglVersion := DiscoverVersion(rawVersion)

	// Last occurrence wins, matching JVM system property semantics.
	libPath := ""
	for i := len(args) - 1; i >= 0; i-- {
		if strings.HasPrefix(args[i], libraryPathFlag) {
			libPath = strings.TrimPrefix(args[i], libraryPathFlag)
			break
		}
	}

	if libPath == "" {
		libPath = r.CacheDir(lwjglVersion)
		if lwjglVersion == Version2 {
			print.Info(fmt.Sprintf(
				"LWJGL library path is not supplied, setting it to %q", libPath))
			flag := libraryPathFlag + libPath
			args = append(args[:classPathIdx], append([]string{flag}, args[classPathIdx:]...)...)
			classPathIdx++
		}
	} else {
		print.Info(fmt.Sprintf("LWJGL library path is set to %q", libPath))
		expanded, err := homedir.Expand(libPath)
		if err == nil {
			libPath = expanded
		}
		r.BaseFolder = libPath
	}

	classPath := strings.Split(args[classPathIdx+1], string(os.PathListSeparator))

	var err error
	if lwjglVersion == Version3 {
		classPath, err = r.RewriteClasspathV3(ctx, classPath)
	} else {
		classPath, err = r.RewriteClasspathV2(ctx, classPath)
	}
	if err != nil {
		return nil, err
	}

	args[classPathIdx+1] = strings.Join(classPath, string(os.PathListSeparator))

	print.Info(fmt.Sprintf("Rewrote lwjgl class paths for %s (LWJGL %d)", rawVersion, lwjglVersion))

	return args, nil
}
