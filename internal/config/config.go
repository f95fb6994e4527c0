// Package config loads and merges the application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full taskboard configuration
type Config struct {
	// DataDir is where the board's key-value entries are persisted
	DataDir string `json:"dataDir"`
	// LoginDelayMs is the cosmetic delay before login results
	LoginDelayMs int `json:"loginDelayMs"`
	// BoardTitle is shown in the header
	BoardTitle string `json:"boardTitle"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		DataDir:      filepath.Join(homeDir, ".taskboard"),
		LoginDelayMs: 600,
		BoardTitle:   "TaskBoard",
	}
}

// LoadConfig loads configuration from .taskboard.json in the given
// directory, merged over defaults. A missing file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".taskboard.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig writes the configuration to the given path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.LoginDelayMs == 0 {
		cfg.LoginDelayMs = defaults.LoginDelayMs
	}
	if cfg.BoardTitle == "" {
		cfg.BoardTitle = defaults.BoardTitle
	}

	return cfg
}

// Load is a convenience function that loads config from the current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
