// Package config loads and self-heals the persisted fix_lwjgl configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/fs"
	"github.com/CoolCat467/fix-lwjgl/src/print"
)

const (
	configFileName = "fix_lwjgl_config.ini"
	sectionName    = "main"

	keyBasePath = "lwjgl_base_path"
	keyDownload = "can_download"
	keyTimeout  = "download_timeout"

	// The literal written for "no timeout".
	noTimeout = "None"
)

// Config is the persisted configuration, loaded once at startup. A nil
// DownloadTimeout means requests are unbounded.
type Config struct {
	LWJGLBasePath   string
	CanDownload     bool
	DownloadTimeout *int // seconds
}

// Timeout converts DownloadTimeout into the zero-means-none form the HTTP
// client expects.
func (c *Config) Timeout() time.Duration {
	if c.DownloadTimeout == nil {
		return 0
	}
	return time.Duration(*c.DownloadTimeout) * time.Second
}

// Path returns the fixed per-user location of the config file, creating the
// directory if needed.
func Path() (string, error) {
	dir, err := fs.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadOrCreate reads the config file, merging defaults over anything missing
// and rewriting the file when it was absent or partial.
func LoadOrCreate() (*Config, error) {
	err := godotenv.Load(".env")
	// on unix: "open .env: no such file or directory"
	// on windows: "open .env: The system cannot find the file specified"
	if err != nil && !strings.HasPrefix(err.Error(), "open .env") {
		print.Warn("Failed to load .env:", err)
	}

	path, err := Path()
	if err != nil {
		return nil, err
	}

	basePath, err := fs.DataDir()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		LWJGLBasePath: basePath,
		CanDownload:   true,
	}

	file, loadErr := ini.Load(path)
	rewrite := loadErr != nil
	if loadErr != nil {
		file = ini.Empty()
	}

	if section, sectionErr := file.GetSection(sectionName); sectionErr == nil {
		if section.HasKey(keyBasePath) {
			expanded, expandErr := homedir.Expand(section.Key(keyBasePath).String())
			if expandErr != nil {
				return nil, errors.Wrap(expandErr, "failed to expand lwjgl_base_path")
			}
			cfg.LWJGLBasePath = expanded
			print.Info("Loaded lwjgl base path from config file.")
		} else {
			rewrite = true
		}

		if section.HasKey(keyDownload) {
			allowed, boolErr := section.Key(keyDownload).Bool()
			if boolErr != nil {
				return nil, errors.Wrapf(boolErr, "invalid %s value", keyDownload)
			}
			cfg.CanDownload = allowed
			print.Info("Loaded if allowed to download from config file.")
		} else {
			rewrite = true
		}

		if section.HasKey(keyTimeout) {
			raw := section.Key(keyTimeout).String()
			if raw != noTimeout {
				seconds, intErr := strconv.Atoi(raw)
				if intErr != nil {
					return nil, errors.Wrapf(intErr, "invalid %s value %q", keyTimeout, raw)
				}
				cfg.DownloadTimeout = &seconds
			}
			print.Info("Loaded download timeout from config file.")
		} else {
			rewrite = true
		}
	} else {
		rewrite = true
	}

	applyEnvOverrides(cfg)

	if loadErr != nil {
		print.Info("Config file does not exist.")
	} else if rewrite {
		print.Info("Config file is missing information.")
	} else {
		print.Info(fmt.Sprintf("Successfully read configuration file %q.", path))
	}

	if rewrite {
		print.Info(fmt.Sprintf("Writing config file to %q.", path))
		if err := save(cfg, path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// applyEnvOverrides lets FIX_LWJGL_* environment variables (possibly supplied
// through .env) take precedence over file values.
func applyEnvOverrides(cfg *Config) {
	if value := os.Getenv("FIX_LWJGL_BASE_PATH"); value != "" {
		if expanded, err := homedir.Expand(value); err == nil {
			cfg.LWJGLBasePath = expanded
		}
	}
	if value := os.Getenv("FIX_LWJGL_CAN_DOWNLOAD"); value != "" {
		if allowed, err := strconv.ParseBool(value); err == nil {
			cfg.CanDownload = allowed
		}
	}
	if value := os.Getenv("FIX_LWJGL_DOWNLOAD_TIMEOUT"); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			cfg.DownloadTimeout = &seconds
		}
	}
}

func save(cfg *Config, path string) error {
	file := ini.Empty()
	section, err := file.NewSection(sectionName)
	if err != nil {
		return errors.Wrap(err, "failed to create config section")
	}

	timeout := noTimeout
	if cfg.DownloadTimeout != nil {
		timeout = strconv.Itoa(*cfg.DownloadTimeout)
	}
	section.Key(keyBasePath).SetValue(cfg.LWJGLBasePath)
	section.Key(keyDownload).SetValue(strconv.FormatBool(cfg.CanDownload))
	section.Key(keyTimeout).SetValue(timeout)

	if err := file.SaveTo(path); err != nil {
		return errors.Wrapf(err, "failed to write config file %q", path)
	}
	return nil
}
