package terminal

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Box drawing characters.
const (
	BoxHorizontal       = "─"
	BoxHeavyHorizontal  = "━"
	BoxHeavyVertical    = "┃"
	BoxHeavyTopLeft     = "┏"
	BoxHeavyTopRight    = "┓"
	BoxHeavyBottomLeft  = "┗"
	BoxHeavyBottomRight = "┛"
)

// HeaderPadding is the space around header content.
const HeaderPadding = 1

// DrawSeparator draws a thin horizontal separator line.
func DrawSeparator(width int) string {
	if width <= 0 {
		return ""
	}

	return strings.Repeat(BoxHorizontal, width)
}

// DrawHeader draws a heavy-bordered section header, growing past width when the
// content does not fit.
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ TITLE                      rightText ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func DrawHeader(title, rightText string, width int) string {
	titleWidth := text.RuneWidthWithoutEscSequences(title)
	rightWidth := text.RuneWidthWithoutEscSequences(rightText)

	minRequired := titleWidth + rightWidth + 4 + (HeaderPadding * 2)
	if width < minRequired {
		width = minRequired
	}

	innerWidth := width - 2
	contentWidth := innerWidth - (HeaderPadding * 2)

	var content string
	if rightText == "" {
		content = PadRight(title, contentWidth)
	} else {
		gap := max(contentWidth-titleWidth-rightWidth, 1)
		content = title + strings.Repeat(" ", gap) + rightText
	}

	pad := strings.Repeat(" ", HeaderPadding)
	rule := strings.Repeat(BoxHeavyHorizontal, innerWidth)

	return BoxHeavyTopLeft + rule + BoxHeavyTopRight + "\n" +
		BoxHeavyVertical + pad + content + pad + BoxHeavyVertical + "\n" +
		BoxHeavyBottomLeft + rule + BoxHeavyBottomRight
}
