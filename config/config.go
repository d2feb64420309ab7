// Package config loads and holds the TOML-configurable settings shared by
// cmd/disasm and cmd/disasmtui — SPEC_FULL.md §4.12.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the disassembler configuration.
type Config struct {
	// Display settings
	Display struct {
		NumberFormat string `toml:"number_format"` // hex, dec, both
		ShowAddress  bool   `toml:"show_address"`
		ShowRawBytes bool   `toml:"show_raw_bytes"`
		BytesPerLine int    `toml:"bytes_per_line"`
		ColorOutput  bool   `toml:"color_output"`
	} `toml:"display"`

	// Decode settings
	Decode struct {
		StartAddress  uint64 `toml:"start_address"`
		StopOnUnknown bool   `toml:"stop_on_unknown"`
	} `toml:"decode"`

	// TUI settings
	TUI struct {
		HistorySize int  `toml:"history_size"`
		FollowPC    bool `toml:"follow_pc"`
	} `toml:"tui"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Display.NumberFormat = "hex"
	cfg.Display.ShowAddress = true
	cfg.Display.ShowRawBytes = true
	cfg.Display.BytesPerLine = 4
	cfg.Display.ColorOutput = true

	cfg.Decode.StartAddress = 0
	cfg.Decode.StopOnUnknown = false

	cfg.TUI.HistorySize = 1000
	cfg.TUI.FollowPC = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "aarch64-disasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "aarch64-disasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadConfig(GetConfigPath())
}

// LoadConfig loads configuration from the specified file, overlaying
// DefaultConfig. A missing file is not an error — it just yields defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
