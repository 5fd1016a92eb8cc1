package log

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestLevelString(t *testing.T) {
	var tests = []struct {
		in   Level
		want string
	}{
		{LevelDisabled, "DISABLED"},
		{LevelDisabled + 1, "DISABLED"},
		{LevelError, slog.LevelError.String()},
		{LevelError + 2, (slog.LevelError + 2).String()},
		{LevelWarn, slog.LevelWarn.String()},
		{LevelInfo, slog.LevelInfo.String()},
		{LevelDebug, slog.LevelDebug.String()},
	}
	for _, tt := range tests {
		got := tt.in.String()
		if got != tt.want {
			t.Errorf("%d: wanted %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestLevelUnmarshalText(t *testing.T) {
	var tests = []struct {
		in   string
		want Level
	}{
		{"DISABLED", LevelDisabled},
		{"DiSaBlE", LevelDisabled},
		{"off", LevelDisabled},
		{"false", LevelDisabled},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{"Error+1", LevelError + 1},
		{"debug", LevelDebug},
	}
	for _, tt := range tests {
		var got Level
		if err := got.UnmarshalText([]byte(tt.in)); err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s: wanted %s, got %s", tt.in, tt.want, got)
		}
	}

	var l Level
	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Errorf("loud: wanted error, got %s", l)
	}
}

func TestLevelJSON(t *testing.T) {
	var tests = []struct {
		in   Level
		want string
	}{
		{LevelDisabled, `"DISABLED"`},
		{LevelWarn, `"WARN"`},
		{LevelError + 1, `"ERROR+1"`},
	}
	for _, tt := range tests {
		data, err := tt.in.MarshalJSON()
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if string(data) != tt.want {
			t.Errorf("%s: wanted %s, got %s", tt.in, tt.want, data)
		}
		var got Level
		if err := got.UnmarshalJSON(data); err != nil {
			t.Fatalf("%s: %v", data, err)
		}
		if got != tt.in {
			t.Errorf("%s: wanted %s, got %s", data, tt.in, got)
		}
	}
}

func TestLevelAppendText(t *testing.T) {
	buf := make([]byte, 4, 16)
	want := []byte("\x00\x00\x00\x00DISABLED")
	data, err := LevelDisabled.AppendText(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("wanted %q, got %q", want, data)
	}
}
