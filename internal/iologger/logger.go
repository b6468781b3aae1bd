// Package iologger sets up the slog logger of airlab.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sigapair/airlab/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "airlab.log"

var logFile *os.File

// Init initializes the global slog logger with the given configuration.
// With the "file" destination records are appended to the log file in
// logDir, so it keeps the analyses of earlier runs. Every record carries
// the process id to tell runs apart.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.OpenFile(logPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		Close()
		logFile = file
		writer = file
	default:
		writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	logger := slog.New(handler).With("app", config.AppName, "pid", os.Getpid())
	slog.SetDefault(logger)

	return nil
}

// Close closes the log file opened by Init, if any.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// parseLevel converts a configured level name, info when unknown.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
