package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

// Point every per-user location at a sandbox so tests never touch the real
// config of whoever runs them.
func sandbox(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, ".local", "share"))
	t.Setenv("FIX_LWJGL_BASE_PATH", "")
	t.Setenv("FIX_LWJGL_CAN_DOWNLOAD", "")
	t.Setenv("FIX_LWJGL_DOWNLOAD_TIMEOUT", "")
	return tmp
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	tmp := sandbox(t)

	cfg, err := LoadOrCreate()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmp, ".local", "share", "fix_lwjgl"), cfg.LWJGLBasePath)
	assert.True(t, cfg.CanDownload)
	assert.Nil(t, cfg.DownloadTimeout)
	assert.Zero(t, cfg.Timeout())

	path, err := Path()
	require.NoError(t, err)
	require.FileExists(t, path)

	file, err := ini.Load(path)
	require.NoError(t, err)
	section := file.Section("main")
	assert.Equal(t, cfg.LWJGLBasePath, section.Key("lwjgl_base_path").String())
	assert.Equal(t, "true", section.Key("can_download").String())
	assert.Equal(t, "None", section.Key("download_timeout").String())
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	tmp := sandbox(t)

	path, err := Path()
	require.NoError(t, err)
	content := "[main]\n" +
		"lwjgl_base_path = " + filepath.Join(tmp, "custom") + "\n" +
		"can_download = false\n" +
		"download_timeout = 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadOrCreate()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmp, "custom"), cfg.LWJGLBasePath)
	assert.False(t, cfg.CanDownload)
	require.NotNil(t, cfg.DownloadTimeout)
	assert.Equal(t, 30, *cfg.DownloadTimeout)
	assert.Equal(t, "30s", cfg.Timeout().String())
}

func TestLoadOrCreateExpandsTilde(t *testing.T) {
	tmp := sandbox(t)

	path, err := Path()
	require.NoError(t, err)
	content := "[main]\n" +
		"lwjgl_base_path = ~/lwjgl_cache\n" +
		"can_download = true\n" +
		"download_timeout = None\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "lwjgl_cache"), cfg.LWJGLBasePath)
	assert.Nil(t, cfg.DownloadTimeout)
}

func TestLoadOrCreateHealsPartialConfig(t *testing.T) {
	sandbox(t)

	path, err := Path()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("[main]\ncan_download = false\n"), 0o644))

	cfg, err := LoadOrCreate()
	require.NoError(t, err)
	assert.False(t, cfg.CanDownload)

	// Missing keys are merged back into the rewritten file.
	file, err := ini.Load(path)
	require.NoError(t, err)
	section := file.Section("main")
	assert.True(t, section.HasKey("lwjgl_base_path"))
	assert.True(t, section.HasKey("download_timeout"))
	assert.Equal(t, "false", section.Key("can_download").String())
}

func TestEnvOverrides(t *testing.T) {
	tmp := sandbox(t)
	t.Setenv("FIX_LWJGL_CAN_DOWNLOAD", "false")
	t.Setenv("FIX_LWJGL_DOWNLOAD_TIMEOUT", "5")
	t.Setenv("FIX_LWJGL_BASE_PATH", filepath.Join(tmp, "elsewhere"))

	cfg, err := LoadOrCreate()
	require.NoError(t, err)

	assert.False(t, cfg.CanDownload)
	require.NotNil(t, cfg.DownloadTimeout)
	assert.Equal(t, 5, *cfg.DownloadTimeout)
	assert.Equal(t, filepath.Join(tmp, "elsewhere"), cfg.LWJGLBasePath)
}
