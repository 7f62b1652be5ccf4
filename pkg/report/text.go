package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Sumatoshi-tech/endorse/pkg/audit"
	"github.com/Sumatoshi-tech/endorse/pkg/terminal"
)

const (
	textIndent     = "  "
	textLabelWidth = 22
	textBarLabel   = 16
	textBarWidth   = 24
	textTitle      = "COMMIT AUDIT"
)

// WriteText writes the human-readable report: scan header, totals, category
// breakdown and trailer breakdown, in that order.
func (s Summary) WriteText(w io.Writer, cfg terminal.Config) error {
	var sb strings.Builder

	sb.WriteString(terminal.DrawHeader(textTitle, s.Title(), cfg.Width))
	sb.WriteString("\n\n")

	s.writeScanSection(&sb, cfg)
	sb.WriteString("\n")
	s.writeSummarySection(&sb, cfg)
	sb.WriteString("\n")
	s.writeCategorySection(&sb, cfg)
	sb.WriteString("\n")
	s.writeTrailerSection(&sb, cfg)

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	return nil
}

func writeSectionTitle(sb *strings.Builder, cfg terminal.Config, title string) {
	fmt.Fprintf(sb, "%s%s\n", textIndent, cfg.Colorize(title, terminal.ColorBlue))
	fmt.Fprintf(sb, "%s%s\n", textIndent, terminal.DrawSeparator(cfg.Width-len(textIndent)*2))
}

func writeField(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "%s%-*s %s\n", textIndent, textLabelWidth, label, value)
}

func (s Summary) writeScanSection(sb *strings.Builder, cfg terminal.Config) {
	writeSectionTitle(sb, cfg, "Scan")

	timeframe := "Overall"
	if s.header.Since != "" {
		timeframe = "Since " + s.header.Since
	}

	label := "Target Email"
	if len(s.header.Targets) > 1 {
		label = "Target Emails"
	}

	writeField(sb, "Repository", s.header.Repository)
	writeField(sb, label, strings.Join(s.header.Targets, ", "))
	writeField(sb, "Match", s.header.Match.String())
	writeField(sb, "Timeframe", timeframe)
	writeField(sb, "Mode", s.mode.String())
}

func (s Summary) writeSummarySection(sb *strings.Builder, cfg terminal.Config) {
	writeSectionTitle(sb, cfg, "Summary")

	writeField(sb, "Total Scanned", cfg.Bold(formatInt(s.totals.Scanned)))
	writeField(sb, LabelAuthored, formatInt(s.totals.Authored))

	if s.mode == audit.ReportExclusive {
		writeField(sb, LabelTouched, formatInt(s.totals.Touched))
		writeField(sb, LabelIgnored, formatInt(s.totals.Ignored))

		return
	}

	writeField(sb, "Trailers", formatInt(s.totals.TrailerSum()))
	writeField(sb, LabelNoInteraction, formatInt(s.totals.NoInteraction()))
}

func (s Summary) writeCategorySection(sb *strings.Builder, cfg terminal.Config) {
	writeSectionTitle(sb, cfg, "Categories")

	entries := s.Table()

	total := 0
	for _, e := range entries {
		total += e.Value
	}

	for _, e := range entries {
		fraction := 0.0
		if total > 0 {
			fraction = float64(e.Value) / float64(total)
		}

		bar := terminal.DrawPercentBar(e.Label, fraction, formatInt(e.Value), textBarLabel, textBarWidth)
		fmt.Fprintf(sb, "%s%s\n", textIndent, cfg.Colorize(bar, categoryColor(e.Label)))
	}
}

func (s Summary) writeTrailerSection(sb *strings.Builder, cfg terminal.Config) {
	writeSectionTitle(sb, cfg, "Trailers")

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateRows = false
	tbl.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	tbl.AppendHeader(table.Row{"Trailer", "Commits"})

	for _, k := range audit.AllKinds() {
		tbl.AppendRow(table.Row{trailerDisplayName(k), formatInt(s.totals.Trailer(k))})
	}

	tbl.AppendFooter(table.Row{"Total", formatInt(s.totals.TrailerSum())})

	for line := range strings.Lines(tbl.Render()) {
		sb.WriteString(textIndent)
		sb.WriteString(strings.TrimRight(line, "\n"))
		sb.WriteString("\n")
	}
}

// trailerDisplayName renders "signed-off-by" as "Signed-off-by".
func trailerDisplayName(k audit.Kind) string {
	name := k.String()
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

func categoryColor(label string) terminal.Color {
	switch label {
	case LabelAuthored:
		return terminal.ColorGreen
	case LabelIgnored, LabelNoInteraction:
		return terminal.ColorGray
	default:
		return terminal.ColorYellow
	}
}

func formatInt(n int) string {
	return humanize.Comma(int64(n))
}
