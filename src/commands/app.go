// Package commands wires configuration, classpath resolution and process
// launching into the CLI entry point.
//
// The surface is pure pass-through: everything after an optional leading
// -noop flag is a Java command line handed to the child verbatim, so no
// flag-parsing framework is involved (one would consume the wrapped flags).
package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/CoolCat467/fix-lwjgl/src/config"
	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/download"
	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/platform"
	"github.com/CoolCat467/fix-lwjgl/src/pkg/launcher"
	"github.com/CoolCat467/fix-lwjgl/src/pkg/lwjgl"
	"github.com/CoolCat467/fix-lwjgl/src/print"
)

// Run resolves the LWJGL classpath in args and launches the result, returning
// the child's exit code. No arguments at all is exit code 1.
func Run(args []string, version string) (int, error) {
	if os.Getenv("VERBOSE") != "" {
		print.SetVerbose()
	}
	if os.Getenv("NO_COLOR") == "" {
		print.SetColoured()
	}

	print.Info(fmt.Sprintf("%s v%s Programmed by CoolCat467.", print.Title, version))

	cfg, err := config.LoadOrCreate()
	if err != nil {
		return 1, err
	}

	if len(args) == 0 {
		print.Info("No java arguments to rewrite lwjgl class paths for!")
		print.Info("Make sure you are using `Wrapper Command` and not pre or post launch command!")
		return 1, nil
	}

	var mcArgs []string
	if strings.EqualFold(args[0], "-noop") {
		mcArgs = args[1:]
		print.Info("Not performing any class path rewrites, -noop flag given.")
	} else {
		resolver := &lwjgl.Resolver{
			Platform:   platform.Host(),
			BaseFolder: cfg.LWJGLBasePath,
			Client: download.New(
				cfg.CanDownload,
				cfg.Timeout(),
				fmt.Sprintf("go-fixlwjgl/%s", version),
			),
		}
		mcArgs, err = resolver.RewriteArgs(context.Background(), args)
		if err != nil {
			return 1, err
		}
	}

	return launcher.Launch(mcArgs)
}
