// Package logger provides centralized logging functionality for greenbar.
// It wraps charmbracelet/log with settings suited to a test-support library:
// no timestamps, stderr output, and a default level quiet enough that passing
// test runs produce no log lines.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout greenbar.
var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)

	// Timestamps would make log output differ between runs
	Logger.SetTimeFormat("")

	Logger.SetLevel(parseLogLevel(os.Getenv("GREENBAR_LOG_LEVEL")))
}

// parseLogLevel converts string to log level. Warn is the default so that
// verification of passing tests stays silent.
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// SetLevel changes the global log level.
func SetLevel(level string) {
	Logger.SetLevel(parseLogLevel(level))
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
