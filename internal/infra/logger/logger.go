// Package logger provides the shell's structured debug logging.
// Output is discarded unless debugging is enabled with --debug or SVCSHELL_DEBUG.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// DebugEnv enables debug logging when set to a true value (1, true, yes).
const DebugEnv = "SVCSHELL_DEBUG"

type Config struct {
	Out   io.Writer
	Debug bool
}

// Logger wraps a slog.Logger whose level can be raised after construction,
// so a --debug flag parsed later still takes effect.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
}

// New builds a text logger writing to cfg.Out, or discarding when cfg.Out is nil.
// Records below warn are dropped until debug is enabled.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339))
			}
			return a
		},
	})

	l := &Logger{Logger: slog.New(h), level: level}
	if cfg.Debug {
		l.EnableDebug()
	}
	return l
}

// FromEnv builds a logger writing to stderr, with debug enabled by SVCSHELL_DEBUG.
func FromEnv() *Logger {
	return New(Config{Out: os.Stderr, Debug: debugFromEnv()})
}

// EnableDebug lowers the level so debug records are written.
func (l *Logger) EnableDebug() {
	l.level.Set(slog.LevelDebug)
	l.Debug("logger.debug_enabled")
}

// DebugEnabled reports whether debug records are written.
func (l *Logger) DebugEnabled() bool {
	return l.level.Level() <= slog.LevelDebug
}

// Discard returns a logger that drops everything, for tests and nil-safe defaults.
func Discard() *Logger {
	return New(Config{})
}

func debugFromEnv() bool {
	val := os.Getenv(DebugEnv)
	if val == "" {
		return false
	}
	enabled, err := strconv.ParseBool(val)
	if err != nil {
		return val == "yes"
	}
	return enabled
}
