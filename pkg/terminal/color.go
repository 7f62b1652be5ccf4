package terminal

import "github.com/fatih/color"

// Color names a foreground color.
type Color int

// Colors used by the report.
const (
	ColorNone Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorGray
)

var colorAttrs = map[Color]color.Attribute{
	ColorGreen:  color.FgGreen,
	ColorYellow: color.FgYellow,
	ColorRed:    color.FgRed,
	ColorBlue:   color.FgBlue,
	ColorGray:   color.FgHiBlack,
}

// Colorize wraps s in the escape sequence for c. With NoColor set, or for
// ColorNone, s is returned unchanged.
func (c Config) Colorize(s string, col Color) string {
	attr, ok := colorAttrs[col]
	if c.NoColor || !ok {
		return s
	}

	painter := color.New(attr)
	painter.EnableColor()

	return painter.Sprint(s)
}

// Bold renders s in bold unless NoColor is set.
func (c Config) Bold(s string) string {
	if c.NoColor {
		return s
	}

	painter := color.New(color.Bold)
	painter.EnableColor()

	return painter.Sprint(s)
}
