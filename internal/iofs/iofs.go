// Package iofs prepares the directories and files airlab keeps under
// the user's home directory.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/sigapair/airlab/pkg/config"
)

// ConfigYAML is the documented default configuration.
//
//go:embed config.yaml
var ConfigYAML string

// The config file holds database and Redis passwords.
const configPerm = 0600

// EnsureDirs creates config, data and log directories.
func EnsureDirs(homeDir string) error {
	for _, v := range []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	} {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureStoreDir creates the directory of the SQLite database file when
// the sqlite driver is configured. It is a no-op for PostgreSQL and for
// in-memory databases.
func EnsureStoreDir(cfg *config.Config) error {
	if cfg.Store.Driver != "sqlite" {
		return nil
	}
	path := cfg.SQLitePath()
	if path == ":memory:" {
		return nil
	}
	return touchDir(filepath.Dir(path))
}

func touchDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless a config file
// already exists. A new file is readable by the owner only.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(ConfigYAML), configPerm); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
