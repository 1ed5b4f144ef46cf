package fs

import (
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const folderName = "fix_lwjgl"

// ConfigDir returns the user's fix_lwjgl config directory and ensures it exists.
func ConfigDir() (string, error) {
	dir := configdir.LocalConfig(folderName)
	if err := EnsureDir(dir, PermDirShared); err != nil {
		return "", errors.Wrapf(err, "failed to create config dir %q", dir)
	}
	return dir, nil
}

// DataDir returns the default base folder for cached LWJGL files, honouring
// XDG_DATA_HOME on unix-likes.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, folderName), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".local", "share", folderName), nil
}
