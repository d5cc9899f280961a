package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

type Fields map[string]interface{}

// Logger is a small wrapper around zerolog.Logger so callers depend on a
// package-local type rather than zerolog directly.
type Logger struct {
	Z zerolog.Logger
}

// NewConsole creates a zerolog ConsoleWriter-backed logger. When color is
// true the console writer emits ANSI colors.
func NewConsole(out io.Writer, level Level, color bool) *Logger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "3:04PM", NoColor: !color}
	l := zerolog.New(cw).With().Timestamp().Logger().Level(level)
	return &Logger{Z: l}
}

// NewNop returns a no-op Logger instance.
func NewNop() *Logger {
	return &Logger{Z: zerolog.Nop()}
}

var std zerolog.Logger

// SetStd replaces the package logger used by the wrapper functions.
func SetStd(l *Logger) {
	if l == nil {
		std = zerolog.Nop()
		return
	}
	std = l.Z
}

func ensureStd() {
	if std.GetLevel() == zerolog.NoLevel {
		std = NewConsole(os.Stdout, zerolog.InfoLevel, true).Z
	}
}

func Debug(msg string, f Fields) {
	ensureStd()
	emit(std.Debug(), msg, f)
}

func Info(msg string, f Fields) {
	ensureStd()
	emit(std.Info(), msg, f)
}

func Warn(msg string, f Fields) {
	ensureStd()
	emit(std.Warn(), msg, f)
}

func Error(msg string, f Fields) {
	ensureStd()
	emit(std.Error(), msg, f)
}

func (l *Logger) Debug(msg string, f Fields) { emit(l.Z.Debug(), msg, f) }
func (l *Logger) Info(msg string, f Fields)  { emit(l.Z.Info(), msg, f) }
func (l *Logger) Warn(msg string, f Fields)  { emit(l.Z.Warn(), msg, f) }
func (l *Logger) Error(msg string, f Fields) { emit(l.Z.Error(), msg, f) }

func emit(e *zerolog.Event, msg string, f Fields) {
	if f != nil {
		e = e.Fields(map[string]interface{}(f))
	}
	e.Msg(msg)
}
