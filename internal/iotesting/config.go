// Package iotesting provides shared helpers for integration tests.
package iotesting

import (
	"os"
	"testing"

	"github.com/sigapair/airlab/internal/ioconfig"
	"github.com/sigapair/airlab/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "airlab_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It loads the standard config (file and AIRLAB_* variables) and
// overrides the database name to TestDatabaseName for safety.
func GetTestConfig() *config.Config {
	var cfg *config.Config
	home, err := os.UserHomeDir()
	if err == nil {
		cfg, err = ioconfig.Load(home)
	}
	if err != nil {
		cfg = config.New()
	}

	cfg.Update([]config.Option{config.OptDatabaseDatabase(TestDatabaseName)})
	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SQLiteConfig returns a config for an SQLite database file in a
// temporary home directory removed after the test. The data directory
// does not exist yet, the command backend creates it.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptStoreDriver("sqlite"),
		config.OptStoreSQLitePath("test.db"),
	})
	return cfg
}
