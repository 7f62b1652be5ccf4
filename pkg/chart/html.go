package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	htmlSize      = "800px"
	htmlRadius    = "70%"
	htmlBorder    = 2
	seriesInner   = "percent"
	seriesOuter   = "category"
	labelPercent  = "{d}%"
	labelCategory = "{b}"
)

// HTMLRenderer writes an interactive ECharts page. Two series share the same
// radius: the inner one labels each slice with its percentage, the outer one
// with its category name.
type HTMLRenderer struct{}

// Ext implements Renderer.
func (HTMLRenderer) Ext() string { return ".html" }

// Render implements Renderer.
func (HTMLRenderer) Render(w io.Writer, c Chart) error {
	slices, colors := c.nonZero()
	if len(slices) == 0 {
		return ErrNoData
	}

	data := make([]opts.PieData, len(slices))
	for i, s := range slices {
		data[i] = opts.PieData{
			Name:      s.Label,
			Value:     s.Value,
			ItemStyle: &opts.ItemStyle{Color: colors[i], BorderColor: "#fff", BorderWidth: htmlBorder},
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     htmlSize,
			Height:    htmlSize,
		}),
		charts.WithTitleOpts(opts.Title{Title: c.Title, Subtitle: c.Subtitle, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	// Options go to AddSeries: SetSeriesOptions would apply to both series.
	pie.AddSeries(seriesInner, data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "inside",
			Formatter: labelPercent,
			Color:     "#fff",
		}),
		charts.WithPieChartOpts(opts.PieChart{Radius: htmlRadius}),
	)

	pie.AddSeries(seriesOuter, data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "outside",
			Formatter: labelCategory,
			Color:     "#000",
		}),
		charts.WithPieChartOpts(opts.PieChart{Radius: htmlRadius}),
	)

	err := pie.Render(w)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	return nil
}
