//go:build !debug

package log

import "log/slog"

// Debug is a no-op unless built with the debug tag.
func Debug(_ string, _ ...any) {}

// SetHandler replaces the handler of the default logger.
func SetHandler(h Handler) {
	defaultLogger = slog.New(h)
}

// DebugLogger returns a [Logger] that discards everything, for use as
// paho's mqtt.DEBUG.
func DebugLogger() Logger { return debugLogger{} }

type debugLogger struct{}

func (debugLogger) Println(v ...any)               {}
func (debugLogger) Printf(format string, v ...any) {}
