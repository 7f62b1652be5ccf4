package terminal

import (
	"fmt"
	"strings"
)

// Progress bar characters.
const (
	ProgressFilled = "█"
	ProgressEmpty  = "░"
)

// PercentMultiplier converts 0-1 to 0-100.
const PercentMultiplier = 100

// DrawProgressBar draws a bar of width cells, value clamped to [0, 1].
// DrawProgressBar(0.7, 10) returns "███████░░░".
func DrawProgressBar(value float64, width int) string {
	value = min(max(value, 0), 1)

	filled := int(value * float64(width))

	return strings.Repeat(ProgressFilled, filled) + strings.Repeat(ProgressEmpty, width-filled)
}

// DrawPercentBar draws a labeled percentage bar with the raw count.
// "Authored         ████████░░░░░░░░░░░░  40%  (1,024)".
func DrawPercentBar(label string, fraction float64, count string, labelWidth, barWidth int) string {
	bar := DrawProgressBar(fraction, barWidth)
	pct := int(fraction * PercentMultiplier)

	return fmt.Sprintf("%s %s %3d%%  (%s)", PadRight(label, labelWidth), bar, pct, count)
}
