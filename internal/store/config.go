package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage" json:"storage"`
	TUI     TUIConfig     `yaml:"tui" json:"tui"`
	Debug   DebugConfig   `yaml:"debug" json:"debug"`
}

type StorageConfig struct {
	// Backend is one of file|sqlite|memory. Empty means file.
	Backend string `yaml:"backend,omitempty" json:"backend,omitempty"`
	// Dir overrides the data directory (default: <config dir>/data).
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`
	// Mouse enables click handling. Nil means enabled.
	Mouse *bool `yaml:"mouse,omitempty" json:"mouse,omitempty"`
}

type DebugConfig struct {
	LogPath  string `yaml:"log_path,omitempty" json:"logPath,omitempty"`
	LogLevel string `yaml:"log_level,omitempty" json:"logLevel,omitempty"`
}

func (c *Config) MouseEnabled() bool {
	if c == nil || c.TUI.Mouse == nil {
		return true
	}
	return *c.TUI.Mouse
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.taskdeck).
	if v := strings.TrimSpace(os.Getenv("TASKDECK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DataDir resolves where storage backends keep their files.
func (c *Config) DataDir() (string, error) {
	if c != nil {
		if d := strings.TrimSpace(c.Storage.Dir); d != "" {
			return d, nil
		}
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// LoadConfig reads config.yaml. A missing file yields the zero Config.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.yaml.*.tmp", path, b, 0o600)
}
