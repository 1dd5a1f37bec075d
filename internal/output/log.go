// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Level is the minimum severity, using the config file's enum
	// (DEBUG, INFO, WARNING, ERROR, CRITICAL). Empty means INFO.
	Level string

	// Verbose forces DEBUG level and enables timestamps regardless of Level.
	Verbose bool

	// File is an optional log file path. When set, log output is mirrored
	// to the file in addition to stderr.
	File string
}

// SetupLogging configures the global logger.
// Returns a close function for the log file sink (no-op when File is unset).
func SetupLogging(cfg LogConfig) (func() error, error) {
	level := ParseLevel(cfg.Level)
	if cfg.Verbose {
		level = log.DebugLevel
	}

	var w io.Writer = os.Stderr
	closer := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
		closer = f.Close
	}

	Logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Verbose || cfg.File != "",
		ReportCaller:    cfg.Verbose,
	})

	return closer, nil
}

// ParseLevel maps the config file's severity enum to a log level.
// CRITICAL maps to FATAL; unknown values fall back to INFO.
func ParseLevel(s string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return log.DebugLevel
	case "INFO", "":
		return log.InfoLevel
	case "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	case "CRITICAL":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// CollectionLogger returns a logger scoped to a collection ID.
func CollectionLogger(collectionID string) *log.Logger {
	return Logger.WithPrefix(collectionID)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
