// Package common provides shared constants, types, and utilities
// used across the WireWarden application.
package common

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for the log file.
const (
	defaultLogMaxSizeMB  = 5
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 28
)

// LogConfig holds configuration options for the logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// EnableFile mirrors log output into a rotating file under the
	// application data directory in addition to stderr.
	EnableFile bool
	// MaxSizeMB, MaxBackups and MaxAgeDays bound the rotated files.
	// Zero values fall back to the defaults above.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	logger  = logrus.New()
	rotator *lumberjack.Logger
)

func init() {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
}

// ParseLogLevel maps a configuration level string to a logrus level.
// Unknown or empty strings fall back to info.
func ParseLogLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// InitLogger initializes the logger with custom configuration.
// Should be called early in application startup.
func InitLogger(config LogConfig) error {
	logger.SetLevel(ParseLogLevel(config.Level))

	if !config.EnableFile {
		return nil
	}

	dataDir, err := GetDataDir()
	if err != nil {
		return WrapError(err, "failed to resolve log directory")
	}

	maxSize := config.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultLogMaxSizeMB
	}
	maxBackups := config.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultLogMaxBackups
	}
	maxAge := config.MaxAgeDays
	if maxAge <= 0 {
		maxAge = defaultLogMaxAgeDays
	}

	rotator = &lumberjack.Logger{
		Filename:   filepath.Join(dataDir, LogFileName),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, rotator))
	return nil
}

// Logger returns the underlying logrus logger for callers that need
// structured fields.
func Logger() *logrus.Logger {
	return logger
}

// Shorthand functions for the application logger.

// LogDebug logs a debug message.
func LogDebug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// LogInfo logs an informational message.
func LogInfo(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// LogWarn logs a warning message.
func LogWarn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// LogError logs an error message.
func LogError(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// CloseLogger closes the log file. Should be called on application shutdown.
func CloseLogger() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}
