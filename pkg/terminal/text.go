package terminal

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// PadRight pads s with spaces on the right to reach width display columns.
// If s is already wider, it is returned unchanged.
func PadRight(s string, width int) string {
	w := text.RuneWidthWithoutEscSequences(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}
