// Package terminal renders the boxes, bars and colors of the text report.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Width limits.
const (
	DefaultWidth = 80
	MinWidth     = 60
	MaxWidth     = 120
)

// Config holds terminal rendering configuration.
type Config struct {
	Width   int
	NoColor bool
}

// NewConfig inspects out. Color is enabled only when out is a terminal and
// noColor is false; width follows the terminal, clamped to [MinWidth, MaxWidth].
func NewConfig(out io.Writer, noColor bool) Config {
	file, isFile := out.(*os.File)
	if !isFile || !term.IsTerminal(int(file.Fd())) {
		return Config{Width: DefaultWidth, NoColor: true}
	}

	return Config{Width: DetectWidth(file), NoColor: noColor}
}

// DetectWidth returns the column count of file, or DefaultWidth when it
// cannot be determined.
func DetectWidth(file *os.File) int {
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return min(max(width, MinWidth), MaxWidth)
}
