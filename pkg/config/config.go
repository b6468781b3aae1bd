// Package config provides configuration management for airlab.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Store: driver, sqlite_path
//   - Notify: transport, redis_addr, redis_password, redis_db, redis_stream
//   - Log: level, format, destination
//   - General: jobs_number, timezone
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use AIRLAB_ prefix with underscores for nesting:
//
//	AIRLAB_DATABASE_HOST=localhost
//	AIRLAB_STORE_DRIVER=sqlite
//	AIRLAB_NOTIFY_TRANSPORT=redis
//	AIRLAB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete airlab configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Store selects the database that keeps reports and lab results.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Notify selects where notifications of finished analyses go.
	Notify NotifyConfig `mapstructure:"notify" yaml:"notify"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// Timezone is the IANA name of the zone used for calendar days in
	// trends and for dates given on the command line.
	Timezone string `mapstructure:"timezone" yaml:"timezone"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// StoreConfig selects the storage backend.
type StoreConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// SQLitePath is the database file used by the sqlite driver.
	// A relative path is resolved against the data directory.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// NotifyConfig selects the notification transport.
type NotifyConfig struct {
	// Transport is "database", "redis" or "both".
	Transport string `mapstructure:"transport" yaml:"transport"`

	// RedisAddr is host:port of the Redis server.
	RedisAddr string `mapstructure:"redis_addr" yaml:"redis_addr"`

	// RedisPassword is optional.
	RedisPassword string `mapstructure:"redis_password" yaml:"redis_password"`

	// RedisDB is the Redis database number.
	RedisDB int `mapstructure:"redis_db" yaml:"redis_db"`

	// RedisStream is the stream that receives notification payloads.
	RedisStream string `mapstructure:"redis_stream" yaml:"redis_stream"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "airlab",
			SSLMode:  "disable",
		},
		Store: StoreConfig{
			Driver:     "postgres",
			SQLitePath: "airlab.db",
		},
		Notify: NotifyConfig{
			Transport:   "database",
			RedisAddr:   "localhost:6379",
			RedisStream: "airlab:notifications",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
		Timezone:   "Asia/Jakarta",
	}

	return res
}
