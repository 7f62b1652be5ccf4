package terminal_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/endorse/pkg/terminal"
)

func TestNewConfig_NonTerminal(t *testing.T) {
	t.Parallel()

	cfg := terminal.NewConfig(&bytes.Buffer{}, false)

	assert.Equal(t, terminal.DefaultWidth, cfg.Width)
	assert.True(t, cfg.NoColor)
}

func TestDetectWidth_NotATerminal(t *testing.T) {
	t.Parallel()

	file, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)

	defer file.Close()

	assert.Equal(t, terminal.DefaultWidth, terminal.DetectWidth(file))
}

func TestDrawProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "░░░░░░░░░░"},
		{"full", 1, "██████████"},
		{"partial", 0.7, "███████░░░"},
		{"below zero", -0.5, "░░░░░░░░░░"},
		{"above one", 1.5, "██████████"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, terminal.DrawProgressBar(tt.value, 10))
		})
	}
}

func TestDrawPercentBar(t *testing.T) {
	t.Parallel()

	got := terminal.DrawPercentBar("Authored", 0.5, "1,024", 10, 4)

	assert.Equal(t, "Authored   ██░░  50%  (1,024)", got)
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", terminal.PadRight("ab", 5))
	assert.Equal(t, "abcdef", terminal.PadRight("abcdef", 3))
	assert.Equal(t, "né ", terminal.PadRight("né", 3))
}

func TestDrawSeparator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "─────", terminal.DrawSeparator(5))
	assert.Empty(t, terminal.DrawSeparator(0))
}

func TestDrawHeader(t *testing.T) {
	t.Parallel()

	header := terminal.DrawHeader("COMMIT AUDIT", "linux", 40)
	lines := strings.Split(header, "\n")

	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "┏"))
	assert.True(t, strings.HasSuffix(lines[0], "┓"))
	assert.Contains(t, lines[1], "COMMIT AUDIT")
	assert.Contains(t, lines[1], "linux")
	assert.True(t, strings.HasPrefix(lines[2], "┗"))

	for _, line := range lines {
		assert.Equal(t, 40, len([]rune(line)))
	}
}

func TestDrawHeader_GrowsToFit(t *testing.T) {
	t.Parallel()

	header := terminal.DrawHeader("A VERY LONG TITLE", "and more", 10)
	lines := strings.Split(header, "\n")

	assert.Contains(t, lines[1], "A VERY LONG TITLE")
	assert.Contains(t, lines[1], "and more")
}

func TestColorize(t *testing.T) {
	t.Parallel()

	on := terminal.Config{NoColor: false}
	off := terminal.Config{NoColor: true}

	green := on.Colorize("ok", terminal.ColorGreen)
	assert.True(t, strings.HasPrefix(green, "\x1b[32m"))
	assert.Contains(t, green, "ok")

	assert.Equal(t, "ok", on.Colorize("ok", terminal.ColorNone))
	assert.Equal(t, "ok", off.Colorize("ok", terminal.ColorRed))
	assert.True(t, strings.HasPrefix(on.Bold("hi"), "\x1b[1m"))
	assert.Equal(t, "hi", off.Bold("hi"))
}
