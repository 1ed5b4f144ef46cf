// Package launcher spawns the rewritten Java command and mirrors its exit
// code.
package launcher

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/CoolCat467/fix-lwjgl/src/print"
)

// Launch runs the argument vector as a child process with inherited stdio and
// returns the child's exit code.
func Launch(args []string) (int, error) {
	if len(args) == 0 {
		return 1, errors.New("no arguments to launch")
	}

	print.Info("Launching minecraft from arguments...")

	cmd := exec.Command(args[0], args[1:]...) //nolint:gosec // launching the user's own command line is the whole point
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, errors.Wrapf(err, "failed to launch %s", args[0])
}
