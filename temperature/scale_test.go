package temperature

import (
	"testing"
)

func TestScaleUnmarshalText(t *testing.T) {
	var tests = []struct {
		in   string
		want Scale
	}{
		{"C", Celsius},
		{"c", Celsius},
		{"celsius", Celsius},
		{"F", Fahrenheit},
		{"Fahrenheit", Fahrenheit},
		{"k", Kelvin},
		{"KELVIN", Kelvin},
	}
	for _, tt := range tests {
		var got Scale
		if err := got.UnmarshalText([]byte(tt.in)); err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s: wanted %s, got %s", tt.in, tt.want, got)
		}
	}

	var s Scale
	if err := s.UnmarshalText([]byte("R")); err == nil {
		t.Errorf("R: wanted error, got %s", s)
	}
}

func TestScaleMarshalText(t *testing.T) {
	for _, s := range []Scale{Celsius, Fahrenheit, Kelvin} {
		got, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		if string(got) != s.String() {
			t.Errorf("%s: wanted %s, got %s", s.Name(), s, got)
		}
	}
	if _, err := Scale('R').MarshalText(); err == nil {
		t.Error("R: wanted error, got nil")
	}
}

func TestScaleName(t *testing.T) {
	var tests = []struct {
		in   Scale
		want string
	}{
		{Celsius, "Celsius"},
		{Fahrenheit, "Fahrenheit"},
		{Kelvin, "Kelvin"},
		{Scale('X'), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.in.Name(); got != tt.want {
			t.Errorf("%q: wanted %s, got %s", byte(tt.in), tt.want, got)
		}
	}
}
