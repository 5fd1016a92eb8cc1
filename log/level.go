package log

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
)

// A Level is the importance or severity of a log event.
// It mirrors [slog.Level] with the addition of [LevelDisabled].
type Level slog.Level

const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns a name for the level. Any level at or above
// [LevelDisabled] is named "DISABLED".
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}
	return slog.Level(l).String()
}

func isDisabled(s string) bool {
	switch strings.ToLower(s) {
	case "disable", "disabled", "false", "off":
		return true
	}
	return false
}

// MarshalJSON implements [encoding/json.Marshaler].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. It accepts any
// string produced by [Level.MarshalJSON], ignoring case.
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if isDisabled(s) {
		*l = LevelDisabled
		return nil
	}
	return (*slog.Level)(l).UnmarshalJSON(data)
}

// AppendText implements [encoding.TextAppender].
func (l Level) AppendText(b []byte) ([]byte, error) {
	return append(b, l.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return l.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Along with the
// names accepted by [slog.Level], "disabled", "disable", "off" and "false"
// map to [LevelDisabled]. Case is ignored.
func (l *Level) UnmarshalText(data []byte) error {
	if isDisabled(string(bytes.TrimSpace(data))) {
		*l = LevelDisabled
		return nil
	}
	return (*slog.Level)(l).UnmarshalText(data)
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }
