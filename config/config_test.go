package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.NumberFormat != "hex" {
		t.Errorf("Expected NumberFormat=hex, got %s", cfg.Display.NumberFormat)
	}
	if !cfg.Display.ShowAddress {
		t.Error("Expected ShowAddress=true")
	}
	if cfg.Display.BytesPerLine != 4 {
		t.Errorf("Expected BytesPerLine=4, got %d", cfg.Display.BytesPerLine)
	}

	if cfg.Decode.StartAddress != 0 {
		t.Errorf("Expected StartAddress=0, got %d", cfg.Decode.StartAddress)
	}
	if cfg.Decode.StopOnUnknown {
		t.Error("Expected StopOnUnknown=false")
	}

	if cfg.TUI.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.TUI.HistorySize)
	}
	if !cfg.TUI.FollowPC {
		t.Error("Expected FollowPC=true")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "aarch64-disasm" && path != "config.toml" {
			t.Errorf("Expected path in aarch64-disasm directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Display.NumberFormat = "dec"
	cfg.Display.ColorOutput = false
	cfg.Decode.StartAddress = 0x8000
	cfg.Decode.StopOnUnknown = true
	cfg.TUI.HistorySize = 500

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Display.NumberFormat != "dec" {
		t.Errorf("Expected NumberFormat=dec, got %s", loaded.Display.NumberFormat)
	}
	if loaded.Display.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if loaded.Decode.StartAddress != 0x8000 {
		t.Errorf("Expected StartAddress=0x8000, got 0x%x", loaded.Decode.StartAddress)
	}
	if !loaded.Decode.StopOnUnknown {
		t.Error("Expected StopOnUnknown=true")
	}
	if loaded.TUI.HistorySize != 500 {
		t.Errorf("Expected HistorySize=500, got %d", loaded.TUI.HistorySize)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig should not error on non-existent file: %v", err)
	}

	if cfg.Display.NumberFormat != "hex" {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[decode]
start_address = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
