package temperature

import (
	"errors"
	"strings"
)

// Scale is a temperature scale identified by its single-letter code.
type Scale byte

const (
	Celsius    Scale = 'C'
	Fahrenheit Scale = 'F'
	Kelvin     Scale = 'K'
)

var errInvalidScale = errors.New("invalid temperature scale")

// String returns the canonical code of the scale, "C", "F" or "K".
func (s Scale) String() string {
	return string(s)
}

// Name returns the full name of the scale.
func (s Scale) Name() string {
	switch s {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "Kelvin"
	}
	return "Unknown"
}

// Valid reports whether s is one of the supported scales.
func (s Scale) Valid() bool {
	return s == Celsius || s == Fahrenheit || s == Kelvin
}

// AppendText implements [encoding.TextAppender].
func (s Scale) AppendText(b []byte) ([]byte, error) {
	if !s.Valid() {
		return b, errInvalidScale
	}
	return append(b, byte(s)), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scale) MarshalText() ([]byte, error) {
	return s.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts either the
// code or the full name of a scale, ignoring case.
func (s *Scale) UnmarshalText(data []byte) error {
	switch strings.ToUpper(string(data)) {
	case "C", "CELSIUS":
		*s = Celsius
	case "F", "FAHRENHEIT":
		*s = Fahrenheit
	case "K", "KELVIN":
		*s = Kelvin
	default:
		return errInvalidScale
	}
	return nil
}

type pair struct {
	from, to Scale
}

// pairs maps a two-letter suffix to its (source, target) scales.
// Same-scale suffixes are deliberately absent.
var pairs = map[string]pair{
	"CF": {Celsius, Fahrenheit},
	"CK": {Celsius, Kelvin},
	"FC": {Fahrenheit, Celsius},
	"FK": {Fahrenheit, Kelvin},
	"KC": {Kelvin, Celsius},
	"KF": {Kelvin, Fahrenheit},
}
