// Package config provides configuration management for WireWarden.
// It handles loading, saving, and validating application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yllada/wirewarden/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// ConfigDir is the directory scanned for WireGuard .conf files.
	// Empty means the directory containing the wirewarden executable.
	ConfigDir string `yaml:"config_dir"`
	// PollIntervalMS is the terminal UI refresh interval in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`
	// ShowNotifications enables desktop notifications for connection events.
	ShowNotifications bool `yaml:"show_notifications"`
	// HistoryEnabled records every transition in the history journal.
	HistoryEnabled bool `yaml:"history_enabled"`
	// HistoryLimit is the number of journal rows kept.
	HistoryLimit int `yaml:"history_limit"`
	// LogLevel sets logging verbosity: "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level"`
	// LogToFile mirrors logs into a rotating file in the data directory.
	LogToFile bool `yaml:"log_to_file"`
}

// DefaultConfig returns the default configuration.
// These are sensible defaults for most users.
func DefaultConfig() *Config {
	return &Config{
		ConfigDir:         "",
		PollIntervalMS:    int(common.DefaultPollInterval / time.Millisecond),
		ShowNotifications: true,
		HistoryEnabled:    true,
		HistoryLimit:      common.DefaultHistoryLimit,
		LogLevel:          "info",
		LogToFile:         true,
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, common.ConfigFileName), nil
}

// Load loads the configuration from path. An empty path means the default
// location. If the file doesn't exist, it is created with default values.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	// If it doesn't exist, write and return the default configuration
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening configuration: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	config.validate()

	return &config, nil
}

// validate normalizes configuration values, falling back to defaults
// rather than failing on out-of-range settings.
func (c *Config) validate() {
	if c.PollIntervalMS == 0 {
		c.PollIntervalMS = int(common.DefaultPollInterval / time.Millisecond)
	} else if c.PollIntervalMS < int(common.MinPollInterval/time.Millisecond) {
		c.PollIntervalMS = int(common.MinPollInterval / time.Millisecond)
	}

	if c.HistoryLimit <= 0 {
		c.HistoryLimit = common.DefaultHistoryLimit
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
		c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	default:
		c.LogLevel = "info"
	}
}

// Save saves the configuration to path. An empty path means the default
// location.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

// PollInterval returns the UI refresh interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// ResolveConfigDir decides which directory holds the WireGuard configuration
// files: an explicit override wins, then the config_dir setting, then the
// directory containing the running executable.
func ResolveConfigDir(override string, cfg *Config) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	if cfg != nil && cfg.ConfigDir != "" {
		return filepath.Abs(cfg.ConfigDir)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", common.WrapError(err, "failed to locate executable")
	}
	return filepath.Dir(exe), nil
}
