package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Theme.Builtin)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.Watch.Enabled)
	require.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce)
	require.Empty(t, cfg.File)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "stylecfg", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
theme:
  path: /etc/stylecfg/theme.toml
log:
  level: debug
watch:
  debounce: 250ms
`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, path, cfg.File)
	require.Equal(t, "/etc/stylecfg/theme.toml", cfg.Theme.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)

	t.Setenv("STYLECFG_LOG_LEVEL", "warn")
	t.Setenv("STYLECFG_WATCH_ENABLED", "false")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, cfg.Watch.Enabled)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Theme.Builtin = "solarized"
	require.ErrorContains(t, cfg.Validate(), `unknown builtin theme "solarized"`)

	cfg.Theme.Path = "theme.toml"
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	err := cfg.Validate()
	require.ErrorContains(t, err, "unknown log level")
	require.ErrorContains(t, err, "unknown log format")
}
