package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "airlab"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/airlab by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for local databases.
// Returns ~/.local/share/airlab by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/airlab/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/airlab/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLitePath returns the absolute path of the SQLite database file.
func (c *Config) SQLitePath() string {
	p := c.Store.SQLitePath
	if p == ":memory:" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(DataDir(c.HomeDir), p)
}
