// Package log provides structured, colored logging for hdvault.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

func init() {
	Logger = NewConsoleLogger(os.Stderr, "info")
}

// Init reconfigures the global logger with the given level.
func Init(level string) {
	Logger = NewConsoleLogger(os.Stderr, level)
}

// NewConsoleLogger builds a colored console logger at the given level.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).
		Level(parseLevel(level)).
		With().Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
