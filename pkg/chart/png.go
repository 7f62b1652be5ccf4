package chart

import (
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	pngSize          = 800
	pngPadTop        = 90
	pngPadSide       = 60
	pngPadBottom     = 110
	pngTitleSize     = 22
	pngSubtitleSize  = 13
	pngSubtitleY     = 70
	pngLabelSize     = 14
	pngLegendSize    = 12
	pngLegendSwatch  = 12
	pngLegendGap     = 28
	pngLegendBaseOff = 40
	pngBorderWidth   = 2
	pngOuterGap      = 1.08
	percentScale     = 100
)

// PNGRenderer draws an 800x800 raster pie in the layout of the HTML chart:
// percentages inside the slices, category names just outside them, the
// subtitle under the title and a shared legend along the bottom.
type PNGRenderer struct{}

// Ext implements Renderer.
func (PNGRenderer) Ext() string { return ".png" }

// Render implements Renderer.
func (PNGRenderer) Render(w io.Writer, c Chart) error {
	slices, colors := c.nonZero()
	if len(slices) == 0 {
		return ErrNoData
	}

	total := float64(c.Total())
	values := make([]gochart.Value, len(slices))

	for i, s := range slices {
		values[i] = gochart.Value{
			Label: fmt.Sprintf("%.1f%%", float64(s.Value)*percentScale/total),
			Value: float64(s.Value),
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(colors[i][1:]),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: pngBorderWidth,
				FontColor:   drawing.ColorWhite,
				FontSize:    pngLabelSize,
			},
		}
	}

	pie := gochart.PieChart{
		Title:      c.Title,
		TitleStyle: gochart.Style{FontSize: pngTitleSize, FontColor: drawing.ColorBlack},
		Width:      pngSize,
		Height:     pngSize,
		Background: gochart.Style{
			Padding: gochart.Box{Top: pngPadTop, Left: pngPadSide, Right: pngPadSide, Bottom: pngPadBottom},
		},
		Values:   values,
		Elements: []gochart.Renderable{
			subtitle(c.Subtitle),
			outerLabels(slices, total),
			legend(slices, colors),
		},
	}

	err := pie.Render(gochart.PNG, w)
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}

	return nil
}

func subtitle(text string) gochart.Renderable {
	return func(r gochart.Renderer, _ gochart.Box, defaults gochart.Style) {
		if text == "" {
			return
		}

		r.SetFont(defaults.GetFont())
		r.SetFontSize(pngSubtitleSize)
		r.SetFontColor(drawing.ColorFromHex("666666"))

		box := r.MeasureText(text)
		r.Text(text, (pngSize-box.Width())/2, pngSubtitleY)
	}
}

// legend lays the swatches out on one centred row.
func legend(slices []Slice, colors []string) gochart.Renderable {
	return func(r gochart.Renderer, _ gochart.Box, defaults gochart.Style) {
		r.SetFont(defaults.GetFont())
		r.SetFontSize(pngLegendSize)

		widths := make([]int, len(slices))
		rowWidth := 0

		for i, s := range slices {
			widths[i] = pngLegendSwatch + pngLegendSwatch/2 + r.MeasureText(s.Label).Width()
			rowWidth += widths[i]
		}

		rowWidth += pngLegendGap * (len(slices) - 1)

		x := (pngSize - rowWidth) / 2
		y := pngSize - pngLegendBaseOff

		for i, s := range slices {
			fill := drawing.ColorFromHex(colors[i][1:])

			r.SetFillColor(fill)
			r.SetStrokeColor(fill)
			r.SetStrokeWidth(1)
			r.MoveTo(x, y-pngLegendSwatch)
			r.LineTo(x+pngLegendSwatch, y-pngLegendSwatch)
			r.LineTo(x+pngLegendSwatch, y)
			r.LineTo(x, y)
			r.Close()
			r.FillStroke()

			r.SetFontColor(drawing.ColorBlack)
			r.Text(s.Label, x+pngLegendSwatch+pngLegendSwatch/2, y)

			x += widths[i] + pngLegendGap
		}
	}
}

// outerLabels names each slice just outside the circle. Angles follow the
// convention go-chart uses for its in-slice labels, so both rings line up.
func outerLabels(slices []Slice, total float64) gochart.Renderable {
	return func(r gochart.Renderer, canvas gochart.Box, defaults gochart.Style) {
		r.SetFont(defaults.GetFont())
		r.SetFontSize(pngLabelSize)
		r.SetFontColor(drawing.ColorBlack)

		cx, cy := canvas.Center()
		radius := float64(min(canvas.Width(), canvas.Height())/2) * pngOuterGap

		done := 0.0

		for _, s := range slices {
			share := float64(s.Value) / total
			theta := gochart.RadianAdd(gochart.PercentToRadians(done+share/2), math.Pi/2)
			done += share

			x, y := gochart.CirclePoint(cx, cy, radius, theta)
			box := r.MeasureText(s.Label)

			if x < cx {
				x -= box.Width()
			}

			if y > cy {
				y += box.Height()
			}

			r.Text(s.Label, x, y)
		}
	}
}
