//go:build debug

package log

import (
	"context"
	"fmt"
	"log/slog"
)

func init() {
	SetLogLevel(LevelDebug)
	defaultLogger.Warn("DEBUG")
}

// Debug logs at [LevelDebug].
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

type debugHandler struct {
	slog.Handler
}

func (h debugHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level == slog.LevelDebug || h.Handler.Enabled(ctx, level)
}

// SetHandler replaces the handler of the default logger. Debug records are
// always passed through.
func SetHandler(h Handler) {
	defaultLogger = slog.New(debugHandler{h})
}

// DebugLogger returns a [Logger] that logs at [LevelDebug].
func DebugLogger() Logger { return debugLogger{} }

type debugLogger struct{}

func (debugLogger) Println(v ...any) {
	Debug(trimNewline(fmt.Sprintln(v...)))
}

func (debugLogger) Printf(format string, v ...any) {
	Debug(fmt.Sprintf(format, v...))
}
