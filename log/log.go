// Package log is a thin wrapper around [log/slog] used throughout tempconv.
//
// Debug logging is compiled out unless built with the "debug" tag.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Handler = slog.Handler

// DiscardHandler drops every record.
var DiscardHandler Handler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelDisabled})

// Logger is the minimal printf-style logger accepted by third-party packages
// such as the MQTT client.
type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

var (
	level         = new(slog.LevelVar)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

func init() {
	level.Set(slog.LevelWarn)
}

// SetLogLevel sets the minimum level of records that are logged.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// LogLevel returns the current minimum level.
func LogLevel() Level {
	return Level(level.Level())
}

// SetTextHandler logs records as text to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler logs records as JSON to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Error logs at [LevelError], adding err as the "cause" attribute when non-nil.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

type warnLogger struct{}

// WarnLogger returns a [Logger] that logs at [LevelWarn].
func WarnLogger() Logger { return warnLogger{} }

func (warnLogger) Println(v ...any)               { Warn(trimNewline(fmt.Sprintln(v...))) }
func (warnLogger) Printf(format string, v ...any) { Warn(fmt.Sprintf(format, v...)) }

type errorLogger struct{}

// ErrorLogger returns a [Logger] that logs at [LevelError].
func ErrorLogger() Logger { return errorLogger{} }

func (errorLogger) Println(v ...any)               { Error(trimNewline(fmt.Sprintln(v...)), nil) }
func (errorLogger) Printf(format string, v ...any) { Error(fmt.Sprintf(format, v...), nil) }

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
