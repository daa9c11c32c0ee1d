// Package config manages shenv configuration from files and environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml", "toml"}

// Config holds shenv configuration.
type Config struct {
	// Raw disables classification; every value is reported as a string.
	Raw bool `mapstructure:"raw"`

	// Format is the default output format for list and get.
	Format string `mapstructure:"format"`

	// EnvFiles are dotenv files layered over the process environment.
	EnvFiles []string `mapstructure:"env_files"`

	// IgnoreShell drops shell-managed variables (PWD, SHLVL, ...) from diffs.
	IgnoreShell bool `mapstructure:"ignore_shell"`

	// Redact masks values of documented secrets and URL passwords in output.
	Redact bool `mapstructure:"redact"`

	// LogLevel is the slog level for diagnostics on stderr.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Raw:         false,
		Format:      "text",
		EnvFiles:    nil,
		IgnoreShell: true,
		Redact:      true,
		LogLevel:    "warn",
	}
}

// Load reads configuration from file and environment variables.
// Configuration is loaded from (in order of precedence):
//  1. Environment variables (SHENV_*)
//  2. Config file ($XDG_CONFIG_HOME/shenv/config.toml or ~/.config/shenv/config.toml)
//  3. Default values
func Load() (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("raw", def.Raw)
	v.SetDefault("format", def.Format)
	v.SetDefault("env_files", []string{})
	v.SetDefault("ignore_shell", def.IgnoreShell)
	v.SetDefault("redact", def.Redact)
	v.SetDefault("log_level", def.LogLevel)

	addConfigPaths(v)

	v.SetEnvPrefix("SHENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that was loaded, or empty if none.
func ConfigFile() string {
	v := viper.New()
	addConfigPaths(v)

	if err := v.ReadInConfig(); err != nil {
		return ""
	}

	return v.ConfigFileUsed()
}

func addConfigPaths(v *viper.Viper) {
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, "shenv"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shenv"))
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured slog level, defaulting to warn.
func (c *Config) Level() slog.Level {
	if c == nil {
		return slog.LevelWarn
	}
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: must be debug|info|warn|error", s)
	}
}
