// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultTheme is the theme used when neither the CLI nor the config file
// names one.
const DefaultTheme = "gruvbox"

// Config represents the ticktock configuration.
type Config struct {
	Theme      string      `toml:"theme"`       // Default theme name
	ThemesFile string      `toml:"themes_file"` // Override themes.json location
	Clock      ClockConfig `toml:"clock"`
}

// ClockConfig holds display settings for the clock face.
type ClockConfig struct {
	SecondHand bool `toml:"second_hand"` // Render HH:MM:SS instead of HH:MM
	TwelveHour bool `toml:"twelve_hour"` // 12-hour display with zero-padded hour
	HotReload  bool `toml:"hot_reload"`  // Watch the themes file for changes
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme:      DefaultTheme,
		ThemesFile: "",
		Clock: ClockConfig{
			SecondHand: true,
			TwelveHour: false,
			HotReload:  true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	return filepath.Join(configHome(), "ticktock", "config.toml")
}

// ThemesPath returns the path to the user themes file.
func ThemesPath() string {
	return filepath.Join(configHome(), "ticktock", "themes.json")
}

func configHome() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return configHome
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
