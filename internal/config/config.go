// Package config loads and saves the TOML application configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/1cbyc/time-tracker/internal/storage"
)

// ConfigFile is the name of the TOML configuration file.
const ConfigFile = "config.toml"

// Config represents the application configuration.
type Config struct {
	// Profile names the data directory tasks and projects are stored in.
	Profile string `toml:"profile"`
	// WeekStartDay defines which day starts the week (monday or sunday).
	WeekStartDay string `toml:"week_start_day"`
	// Timezone is an IANA timezone name, or "Local" for the system zone.
	Timezone string `toml:"timezone"`
	// Theme names the TUI color theme.
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Profile:      storage.DefaultProfile,
		WeekStartDay: "monday",
		Timezone:     "Local",
		Theme:        "dracula",
	}
}

// GetConfigPath returns the path to the config file, creating the
// application directory if needed.
func GetConfigPath() (string, error) {
	appDir, err := storage.AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path. A missing file yields the
// defaults; a present but unreadable file is an error so a typo in the
// config is not silently ignored.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.Profile == "" {
		cfg.Profile = storage.DefaultProfile
	}
	return cfg, nil
}

// Save writes the config to path atomically.
func Save(path string, cfg Config) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// WeekStart maps the configured week start day onto a time.Weekday,
// defaulting to Monday (ISO 8601).
func (c Config) WeekStart() time.Weekday {
	if c.WeekStartDay == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// Location resolves the configured timezone, falling back to the system
// local zone when the name is empty, "Local", or unknown.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
