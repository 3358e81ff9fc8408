// ABOUTME: Fitlog configuration: data directory and calendar selection.
// ABOUTME: JSON file under XDG config paths with a store/calendar factory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/varzesh/fitlog/internal/caldate"
	"github.com/varzesh/fitlog/internal/kv"
)

// Config stores fitlog settings.
type Config struct {
	// DataDir is the root directory for the Badger store.
	// Supports ~ expansion. Defaults to ~/.local/share/fitlog.
	DataDir string `json:"data_dir,omitempty"`

	// Calendar selects the calendar system: "jalali" (default) or
	// "gregorian". Ledger keys are written in the active calendar, so
	// switching it on an existing store mislabels old entries.
	Calendar string `json:"calendar,omitempty"`
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitlog")
}

// GetDataDir returns the configured data directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetCalendar returns the configured calendar name, defaulting to jalali.
func (c *Config) GetCalendar() string {
	if c.Calendar == "" {
		return "jalali"
	}
	return c.Calendar
}

// OpenStore opens the Badger store at the configured location.
func (c *Config) OpenStore() (*kv.BadgerStore, error) {
	return kv.Open(filepath.Join(c.GetDataDir(), "db"))
}

// OpenCalendar constructs the configured calendar.
func (c *Config) OpenCalendar() (caldate.Calendar, error) {
	return caldate.New(c.GetCalendar())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
