// Package config loads user configuration from ~/.config/gitfindr/config.toml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ScanConfig holds directory-scan policy.
type ScanConfig struct {
	// StopAtRepo stops a scan from descending past a repository boundary.
	// Off by default: nested repos are registered independently.
	StopAtRepo bool `toml:"stop_at_repo"`
}

// Config holds the gitfindr configuration.
type Config struct {
	// ScanDir is the directory scanned by `add --dir` when the flag value
	// is empty. Absolute or ~-prefixed.
	ScanDir string     `toml:"scan_dir"`
	Scan    ScanConfig `toml:"scan"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitfindr", "config.toml"), nil
}

// Load reads config from ~/.config/gitfindr/config.toml
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.ScanDir != "" {
		expanded, err := expandPath(cfg.ScanDir)
		if err != nil {
			return Default(), err
		}
		cfg.ScanDir = expanded
	}

	return cfg, nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
