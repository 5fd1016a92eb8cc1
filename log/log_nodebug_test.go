//go:build !debug

package log

import "testing"

func TestDebugDisabled(t *testing.T) {
	buf := withOutput(t, false)
	SetLogLevel(LevelDebug)

	Debug("debug message", "key", 1)
	DebugLogger().Println("debug", "line")
	DebugLogger().Printf("debug %d", 2)

	if buf.Len() != 0 {
		t.Errorf("wanted no output, got %q", buf.String())
	}
}
