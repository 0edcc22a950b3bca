package model

// Units selects the unit system OpenWeatherMap reports temperatures in.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// UnitsFor maps the --imperial flag to a unit system.
func UnitsFor(imperial bool) Units {
	if imperial {
		return Imperial
	}
	return Metric
}

// Symbol returns the temperature scale letter shown after the degree sign.
func (u Units) Symbol() string {
	if u == Imperial {
		return "F"
	}
	return "C"
}

// WeatherReport is what gets printed: one city, its primary condition and temperature.
type WeatherReport struct {
	City        string
	Code        int
	Description string
	Temperature float64
	Units       Units
}
