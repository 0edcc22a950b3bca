package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fakhrymubarak/weather-cli/internal/model"
	"github.com/fatih/color"
)

// Padding is the column width of the city and description fields.
const Padding = 20

// Render writes the one-line summary for r. When colored is false no escape
// sequences are written.
func Render(w io.Writer, r model.WeatherReport, colored bool) error {
	style := SelectCategory(r.Code)

	city := color.New(color.ReverseVideo)
	paint := color.New(style.Color)
	if colored {
		city.EnableColor()
		paint.EnableColor()
	} else {
		city.DisableColor()
		paint.DisableColor()
	}

	var b strings.Builder
	b.WriteString(city.Sprint(center(r.City, Padding)))
	b.WriteString(paint.Sprintf("\t%s \t%-*s ", style.Glyph, Padding, capitalize(r.Description)))
	fmt.Fprintf(&b, "(%s°%s)\n", formatTemperature(r.Temperature), r.Units.Symbol())

	_, err := io.WriteString(w, b.String())
	return err
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// formatTemperature prints the shortest exact form with at least one decimal: 21 -> "21.0".
func formatTemperature(t float64) string {
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
