package util

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel names a minimum severity. Unknown values fall back to info.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// LogFormat selects the handler encoding.
type LogFormat string

const (
	FormatJSON LogFormat = "json"
	FormatText LogFormat = "text"
)

// LoggerConfig describes how to build a logger. A nil Output means stderr,
// which keeps stdout clean for the MCP stdio transport.
type LoggerConfig struct {
	Level  LogLevel
	Format LogFormat
	Output io.Writer
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: LevelInfo, Format: FormatText}
}

var slogLevels = map[LogLevel]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func parseLevel(level LogLevel) slog.Level {
	if lv, ok := slogLevels[LogLevel(strings.ToLower(string(level)))]; ok {
		return lv
	}
	return slog.LevelInfo
}

// NewLogger builds a structured logger from cfg.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// SetDefault installs logger as the process-wide slog default.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
