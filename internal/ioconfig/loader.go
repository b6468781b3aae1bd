// Package ioconfig reads airlab configuration from config.yaml and
// AIRLAB_* environment variables.
package ioconfig

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/sigapair/airlab/internal/iofs"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables.
const EnvPrefix = "AIRLAB"

// Load returns a valid Config for homeDir. Values from the config file
// and the environment are applied as options over defaults, so invalid
// values are reported and ignored. A missing config file is not an
// error.
func Load(homeDir string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return nil, iofs.ReadFileError(cfgPath, err)
		}
	}

	var raw config.Config
	if err := v.Unmarshal(&raw); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	res := config.New()
	res.Update(raw.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})
	return res, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

func initEnvVars(v *viper.Viper) {
	// Variables are bound one by one, so the list below is the complete
	// set of supported variables. They match config.ToOptions().
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "AIRLAB_DATABASE_HOST")
	v.BindEnv("database.port", "AIRLAB_DATABASE_PORT")
	v.BindEnv("database.user", "AIRLAB_DATABASE_USER")
	v.BindEnv("database.password", "AIRLAB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "AIRLAB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "AIRLAB_DATABASE_SSL_MODE")

	// Store configuration
	v.BindEnv("store.driver", "AIRLAB_STORE_DRIVER")
	v.BindEnv("store.sqlite_path", "AIRLAB_STORE_SQLITE_PATH")

	// Notification configuration
	v.BindEnv("notify.transport", "AIRLAB_NOTIFY_TRANSPORT")
	v.BindEnv("notify.redis_addr", "AIRLAB_NOTIFY_REDIS_ADDR")
	v.BindEnv("notify.redis_password", "AIRLAB_NOTIFY_REDIS_PASSWORD")
	v.BindEnv("notify.redis_db", "AIRLAB_NOTIFY_REDIS_DB")
	v.BindEnv("notify.redis_stream", "AIRLAB_NOTIFY_REDIS_STREAM")

	// Log configuration
	v.BindEnv("log.level", "AIRLAB_LOG_LEVEL")
	v.BindEnv("log.format", "AIRLAB_LOG_FORMAT")
	v.BindEnv("log.destination", "AIRLAB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "AIRLAB_JOBS_NUMBER")
	v.BindEnv("timezone", "AIRLAB_TIMEZONE")

	v.AutomaticEnv()
}
