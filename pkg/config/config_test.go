package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sigapair/airlab/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "airlab"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "airlab"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "airlab", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "airlab", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "airlab", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		// Store and notifications
		assert.Equal(t, "postgres", cfg.Store.Driver)
		assert.Equal(t, "airlab.db", cfg.Store.SQLitePath)
		assert.Equal(t, "database", cfg.Notify.Transport)
		assert.Equal(t, "localhost:6379", cfg.Notify.RedisAddr)
		assert.Equal(t, "airlab:notifications", cfg.Notify.RedisStream)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
		assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid host", "db.example.com", "db.example.com"},
		{"trims whitespace", "  db.example.com  ", "db.example.com"},
		{"ignores empty string", "", "localhost"},
		{"ignores whitespace-only", "   ", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid port", 5433, 5433},
		{"ignores zero", 0, 5432},
		{"ignores negative", -100, 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePort(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionEnums(t *testing.T) {
	tests := []struct {
		name string
		opt  config.Option
		get  func(*config.Config) string
		want string
	}{
		{
			"ssl mode", config.OptDatabaseSSLMode(" REQUIRE "),
			func(c *config.Config) string { return c.Database.SSLMode }, "require",
		},
		{
			"bad ssl mode", config.OptDatabaseSSLMode("maybe"),
			func(c *config.Config) string { return c.Database.SSLMode }, "disable",
		},
		{
			"sqlite driver", config.OptStoreDriver("sqlite"),
			func(c *config.Config) string { return c.Store.Driver }, "sqlite",
		},
		{
			"bad driver", config.OptStoreDriver("mysql"),
			func(c *config.Config) string { return c.Store.Driver }, "postgres",
		},
		{
			"redis transport", config.OptNotifyTransport("Both"),
			func(c *config.Config) string { return c.Notify.Transport }, "both",
		},
		{
			"bad transport", config.OptNotifyTransport("sms"),
			func(c *config.Config) string { return c.Notify.Transport }, "database",
		},
		{
			"log level", config.OptLogLevel("debug"),
			func(c *config.Config) string { return c.Log.Level }, "debug",
		},
		{
			"bad log level", config.OptLogLevel("trace"),
			func(c *config.Config) string { return c.Log.Level }, "info",
		},
		{
			"log format", config.OptLogFormat("text"),
			func(c *config.Config) string { return c.Log.Format }, "text",
		},
		{
			"log destination", config.OptLogDestination("stderr"),
			func(c *config.Config) string { return c.Log.Destination }, "stderr",
		},
		{
			"bad log destination", config.OptLogDestination("stdin"),
			func(c *config.Config) string { return c.Log.Destination }, "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.want, tt.get(cfg))
		})
	}
}

func TestOptionRedisDB(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptNotifyRedisDB(3)})
	assert.Equal(t, 3, cfg.Notify.RedisDB)

	cfg.Update([]config.Option{config.OptNotifyRedisDB(-1)})
	assert.Equal(t, 3, cfg.Notify.RedisDB)

	cfg.Update([]config.Option{config.OptNotifyRedisDB(0)})
	assert.Equal(t, 0, cfg.Notify.RedisDB)
}

func TestOptionTimezone(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptTimezone("Asia/Makassar")})
	assert.Equal(t, "Asia/Makassar", cfg.Timezone)
	assert.Equal(t, "Asia/Makassar", cfg.Location().String())

	cfg.Update([]config.Option{config.OptTimezone("Mars/Olympus")})
	assert.Equal(t, "Asia/Makassar", cfg.Timezone)
}

func TestOptionJobsNumber(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptJobsNumber(16)})
	assert.Equal(t, 16, cfg.JobsNumber)

	cfg.Update([]config.Option{config.OptJobsNumber(0)})
	assert.Equal(t, 16, cfg.JobsNumber)
}

func TestSQLitePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/lab")})
	assert.Equal(t,
		filepath.Join("/home/lab", ".local", "share", "airlab", "airlab.db"),
		cfg.SQLitePath())

	cfg.Update([]config.Option{config.OptStoreSQLitePath("/srv/airlab.db")})
	assert.Equal(t, "/srv/airlab.db", cfg.SQLitePath())

	cfg.Update([]config.Option{config.OptStoreSQLitePath(":memory:")})
	assert.Equal(t, ":memory:", cfg.SQLitePath())
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("custom.host.com"),
			config.OptDatabasePort(6432),
			config.OptDatabaseUser("myuser"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, "custom.host.com", cfg.Database.Host)
		assert.Equal(t, 6432, cfg.Database.Port)
		assert.Equal(t, "myuser", cfg.Database.User)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseHost("first.host.com"),
			config.OptDatabaseHost("second.host.com"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second.host.com", cfg.Database.Host)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6432),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptStoreDriver("sqlite"),
			config.OptStoreSQLitePath("lab.db"),
			config.OptNotifyTransport("redis"),
			config.OptNotifyRedisAddr("redis:6380"),
			config.OptNotifyRedisPassword("secret"),
			config.OptNotifyRedisDB(2),
			config.OptNotifyRedisStream("lab:events"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
			config.OptTimezone("Asia/Jayapura"),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Store, newCfg.Store)
		assert.Equal(t, original.Notify, newCfg.Notify)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
		assert.Equal(t, original.Timezone, newCfg.Timezone)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/custom/home")})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
	})
}
