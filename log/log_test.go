package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func withOutput(t *testing.T, asJSON bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := defaultLogger, LogLevel()
	t.Cleanup(func() {
		defaultLogger = prevLogger
		SetLogLevel(prevLevel)
	})
	if asJSON {
		SetJSONHandler(&buf)
	} else {
		SetTextHandler(&buf)
	}
	return &buf
}

func TestSetLogLevel(t *testing.T) {
	buf := withOutput(t, false)
	SetLogLevel(LevelWarn)

	Info("hidden")
	Warn("shown", "token", "10CC")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record logged at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "token=10CC") {
		t.Errorf("wanted warn record, got %q", out)
	}

	buf.Reset()
	SetLogLevel(LevelDisabled)
	Error("nothing", nil)
	if buf.Len() != 0 {
		t.Errorf("wanted no output when disabled, got %q", buf.String())
	}
}

func TestErrorCause(t *testing.T) {
	buf := withOutput(t, true)
	SetLogLevel(LevelInfo)

	Error("publish failed", errors.New("not connected"), "topic", "tempconv/F/C")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("%q: %v", buf.String(), err)
	}
	if rec["cause"] != "not connected" {
		t.Errorf("cause: wanted %q, got %v", "not connected", rec["cause"])
	}
	if rec["topic"] != "tempconv/F/C" {
		t.Errorf("topic: wanted %q, got %v", "tempconv/F/C", rec["topic"])
	}
}

func TestLoggers(t *testing.T) {
	buf := withOutput(t, false)
	SetLogLevel(LevelInfo)

	WarnLogger().Println("warn", "line")
	ErrorLogger().Printf("error %d", 2)

	out := buf.String()
	if !strings.Contains(out, `level=WARN msg="warn line"`) {
		t.Errorf("wanted warn line, got %q", out)
	}
	if !strings.Contains(out, `level=ERROR msg="error 2"`) {
		t.Errorf("wanted error line, got %q", out)
	}
}
