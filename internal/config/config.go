// Package config loads standup client settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name under the user config directory.
const FileName = "config.yaml"

// Theme names accepted in configuration.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Config holds all client settings.
type Config struct {
	// APIBaseURL is the standup backend base URL.
	APIBaseURL string `yaml:"api_base_url"`

	// TimeoutSeconds bounds every backend request.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Language is the UI language code (e.g. "ja", "en").
	Language string `yaml:"language"`

	// Theme selects the color scheme: light, dark or auto.
	Theme string `yaml:"theme"`

	// NotifyDailyReport enables the daily report reminder.
	NotifyDailyReport bool `yaml:"notify_daily_report"`

	// LogLevel and LogFormat configure logging output.
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in settings, matching the original client's
// defaults (local backend, 10 second timeout, Japanese UI).
func Default() Config {
	return Config{
		APIBaseURL:        "http://localhost:3001/api",
		TimeoutSeconds:    10,
		Language:          "ja",
		Theme:             ThemeAuto,
		NotifyDailyReport: true,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// DefaultPath returns the standard config file location,
// e.g. ~/.config/daily-standup/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "daily-standup", FileName), nil
}

// Load reads configuration from path, layering file values over the
// defaults and environment variables over both. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults plus env only.
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if
// needed. Used by the settings command to persist preference changes.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STANDUP_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("STANDUP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("STANDUP_LANG"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("STANDUP_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("STANDUP_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("STANDUP_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

func (c Config) validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		return fmt.Errorf("invalid theme %q: want light, dark or auto", c.Theme)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
