package temperature

// KelvinOffset is the difference between the Kelvin and Celsius scales.
const KelvinOffset = 273.15

func fahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// Convert returns the value of t on its target scale.
func (t Temperature) Convert() float64 {
	v := t.value
	switch t.scale {
	case Celsius:
		switch t.convertTo {
		case Fahrenheit:
			return celsiusToFahrenheit(v)
		case Kelvin:
			return v + KelvinOffset
		}
	case Fahrenheit:
		switch t.convertTo {
		case Celsius:
			return fahrenheitToCelsius(v)
		case Kelvin:
			return fahrenheitToCelsius(v) + KelvinOffset
		}
	case Kelvin:
		switch t.convertTo {
		case Celsius:
			return v - KelvinOffset
		case Fahrenheit:
			return celsiusToFahrenheit(v - KelvinOffset)
		}
	}
	return v
}
