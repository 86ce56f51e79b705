package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/bark/internal/logging"
)

const appName = "bark"

// Color modes for console output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	DefaultDeck  string `toml:"default_deck"`
	Color        string `toml:"color"`
	LogLevel     string `toml:"log_level"`
	HeatmapScale int    `toml:"heatmap_scale"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		DefaultDeck:  "",
		Color:        ColorAuto,
		LogLevel:     logging.DefaultLevel,
		HeatmapScale: 16,
	}
}

// Validate checks field values, filling blanks with defaults
func (c *Config) Validate() error {
	def := Default()
	switch c.Color {
	case "":
		c.Color = def.Color
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.HeatmapScale <= 0 {
		c.HeatmapScale = def.HeatmapScale
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the directory holding named deck files
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := writeConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %v", configPath, err)
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}

// GetDeckPath resolves a deck name, first in the deck library, then as a path
func GetDeckPath(deckName string) (string, error) {
	if deckName == "" {
		return "", fmt.Errorf("no deck given and no default deck configured")
	}

	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if info, err := os.Stat(deckPath); err == nil && !info.IsDir() {
		return deckPath, nil
	}

	if info, err := os.Stat(deckName); err == nil && !info.IsDir() {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.DefaultDeck = deckName
	return writeConfig(config)
}
