package display

import "github.com/fatih/color"

// Category is a display bucket derived from an OpenWeatherMap condition code.
type Category int

const (
	Unknown Category = iota
	Thunderstorm
	Drizzle
	Rain
	Snow
	Atmosphere
	Clear
	Cloudy
)

var categoryNames = map[Category]string{
	Unknown:      "unknown",
	Thunderstorm: "thunderstorm",
	Drizzle:      "drizzle",
	Rain:         "rain",
	Snow:         "snow",
	Atmosphere:   "atmosphere",
	Clear:        "clear",
	Cloudy:       "cloudy",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Style is the glyph and foreground color a category is printed with.
type Style struct {
	Category Category
	Glyph    string
	Color    color.Attribute
}

// codeRange matches codes in [lo, hi).
type codeRange struct {
	lo, hi int
	style  Style
}

var codeRanges = []codeRange{
	{200, 300, Style{Thunderstorm, "💥", color.FgRed}},
	{300, 400, Style{Drizzle, "💧", color.FgCyan}},
	{500, 600, Style{Rain, "💦", color.FgBlue}},
	{600, 700, Style{Snow, "⛄️", color.FgWhite}},
	{700, 800, Style{Atmosphere, "🌀", color.FgMagenta}},
	{800, 801, Style{Clear, "🔆", color.FgYellow}},
	{801, 900, Style{Cloudy, "💨", color.FgHiCyan}},
}

// Codes the API may add later land here instead of failing.
var fallbackStyle = Style{Unknown, "🌈", color.Reset}

// SelectCategory returns the style for a weather condition code.
func SelectCategory(code int) Style {
	for _, r := range codeRanges {
		if code >= r.lo && code < r.hi {
			return r.style
		}
	}
	return fallbackStyle
}
