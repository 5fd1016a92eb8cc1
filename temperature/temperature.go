// Package temperature parses conversion requests such as "32FC" and converts
// values between the Celsius, Fahrenheit and Kelvin scales.
//
// A request is a decimal number followed by two scale codes, the source scale
// then the target scale. Codes are case-insensitive:
//
//	32FC  -> 32 degrees Fahrenheit to Celsius
//	36ck  -> 36 degrees Celsius to Kelvin
//	-40CF -> -40 degrees Celsius to Fahrenheit
package temperature

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Temperature is a value on a source scale together with the scale it should
// be converted to. The zero value is not a valid Temperature; use [Parse].
type Temperature struct {
	value     float64
	scale     Scale
	convertTo Scale
}

// Parse parses a single conversion request.
//
// The returned error, if any, is one of [ErrNotNumeric], [ErrScaleUnknown]
// or [ErrInconvertible].
func Parse(token string) (Temperature, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Temperature{}, ErrInconvertible
	}
	if len(token) == 1 {
		// A lone digit is a number without any scale.
		if _, ok := parseFloat(token); ok {
			return Temperature{}, ErrScaleUnknown
		}
		return Temperature{}, ErrNotNumeric
	}

	token = strings.ToUpper(token)
	i := len(token) - 2
	p, ok := pairs[token[i:]]
	if !ok {
		return Temperature{}, ErrScaleUnknown
	}
	v, ok := parseFloat(token[:i])
	if !ok {
		return Temperature{}, ErrNotNumeric
	}
	return Temperature{value: v, scale: p.from, convertTo: p.to}, nil
}

// MustParse is like [Parse] but panics if the token cannot be parsed.
func MustParse(token string) Temperature {
	t, err := Parse(token)
	if err != nil {
		panic(`temperature: Parse(` + strconv.Quote(token) + `): ` + err.Error())
	}
	return t
}

// parseFloat only accepts decimal notation; hex floats and digit separators,
// which strconv would otherwise allow, are rejected. Values too large for a
// float64 parse as ±Inf and NaN may carry a sign.
func parseFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	unsigned := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		unsigned = s[1:]
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, true
	}
	return v, err == nil
}

// Value returns the value on the source scale.
func (t Temperature) Value() float64 { return t.value }

// Scale returns the source scale.
func (t Temperature) Scale() Scale { return t.scale }

// ConvertTo returns the target scale.
func (t Temperature) ConvertTo() Scale { return t.convertTo }

// String formats t as "<value><source> => <converted><target>",
// for example "32F => 0C".
func (t Temperature) String() string {
	b := make([]byte, 0, 32)
	b = appendFloat(b, t.value)
	b = appendScale(b, t.scale)
	b = append(b, " => "...)
	b = appendFloat(b, t.Convert())
	b = appendScale(b, t.convertTo)
	return string(b)
}

// appendScale writes "?" for a scale that is not valid, as in the zero
// Temperature.
func appendScale(b []byte, s Scale) []byte {
	if !s.Valid() {
		return append(b, '?')
	}
	return append(b, byte(s))
}

// appendFloat renders v in its shortest round-trip decimal form,
// never using an exponent.
func appendFloat(b []byte, v float64) []byte {
	switch {
	case math.IsInf(v, 1):
		return append(b, "inf"...)
	case math.IsInf(v, -1):
		return append(b, "-inf"...)
	case math.IsNaN(v):
		return append(b, "NaN"...)
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

type payload struct {
	Value     float64 `json:"value"`
	Scale     Scale   `json:"scale"`
	ConvertTo Scale   `json:"convert_to"`
	Converted float64 `json:"converted"`
	Display   string  `json:"display"`
}

// MarshalJSON implements [json.Marshaler]. Non-finite values cannot be
// encoded and return an error.
func (t Temperature) MarshalJSON() ([]byte, error) {
	return json.Marshal(payload{
		Value:     t.value,
		Scale:     t.scale,
		ConvertTo: t.convertTo,
		Converted: t.Convert(),
		Display:   t.String(),
	})
}
