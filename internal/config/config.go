// Package config loads stylecfg settings from defaults, an optional config
// file and STYLECFG_ environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/opencode-ai/stylecfg/internal/logging"
	"github.com/opencode-ai/stylecfg/internal/theme"
)

// EnvPrefix is the prefix of environment overrides, e.g. STYLECFG_THEME_PATH.
const EnvPrefix = "STYLECFG"

// Config is the resolved application configuration.
type Config struct {
	Theme ThemeConfig `mapstructure:"theme"`
	Log   LogConfig   `mapstructure:"log"`
	Watch WatchConfig `mapstructure:"watch"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// ThemeConfig selects the theme document. Path wins over Builtin.
type ThemeConfig struct {
	Path    string `mapstructure:"path"`
	Builtin string `mapstructure:"builtin"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{Builtin: "light"},
		Log:   LogConfig{Level: "info", Format: "console"},
		Watch: WatchConfig{Enabled: true, Debounce: 100 * time.Millisecond},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "stylecfg", "config.yaml")
}

// Load reads the configuration. An explicit path must exist; without one
// the default location is used when present.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("theme.path", defaults.Theme.Path)
	v.SetDefault("theme.builtin", defaults.Theme.Builtin)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("watch.enabled", defaults.Watch.Enabled)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if def := DefaultPath(); def != "" {
		if _, err := os.Stat(def); err == nil {
			v.SetConfigFile(def)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", def, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Theme.Path == "" && !isBuiltin(c.Theme.Builtin) {
		errs = append(errs, fmt.Errorf("unknown builtin theme %q, available: %s",
			c.Theme.Builtin, strings.Join(theme.BuiltinNames(), ", ")))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative"))
	}
	return errors.Join(errs...)
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}

func isBuiltin(name string) bool {
	for _, n := range theme.BuiltinNames() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
