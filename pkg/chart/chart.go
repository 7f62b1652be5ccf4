// Package chart draws the category breakdown of a run as a pie.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const chartFileMode = 0o644

// ErrNoData is returned when every slice is zero.
var ErrNoData = errors.New("chart has no non-zero slice")

// Palette is the slice color cycle, ECharts' default series colors.
var Palette = []string{
	"#5470c6", "#91cc75", "#fac858", "#ee6666",
	"#73c0de", "#3ba272", "#fc8452", "#9a60b4",
}

// Slice is one labelled pie segment.
type Slice struct {
	Label string
	Value int
}

// Chart is a titled pie.
type Chart struct {
	Title    string
	Subtitle string
	Slices   []Slice
}

// Total sums the slice values.
func (c Chart) Total() int {
	total := 0
	for _, s := range c.Slices {
		total += s.Value
	}

	return total
}

// nonZero drops empty slices, keeping each slice's palette color.
func (c Chart) nonZero() ([]Slice, []string) {
	slices := make([]Slice, 0, len(c.Slices))
	colors := make([]string, 0, len(c.Slices))

	for i, s := range c.Slices {
		if s.Value <= 0 {
			continue
		}

		slices = append(slices, s)
		colors = append(colors, Palette[i%len(Palette)])
	}

	return slices, colors
}

// Renderer writes a chart in one output format.
type Renderer interface {
	Render(w io.Writer, c Chart) error
	// Ext is the file extension, with the dot.
	Ext() string
}

// WriteFile renders c into path, replacing any existing file. Nothing is written
// when rendering fails.
func WriteFile(r Renderer, path string, c Chart) error {
	var buf bytes.Buffer

	err := r.Render(&buf, c)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	err = os.WriteFile(path, buf.Bytes(), chartFileMode)
	if err != nil {
		return fmt.Errorf("write chart file: %w", err)
	}

	return nil
}
