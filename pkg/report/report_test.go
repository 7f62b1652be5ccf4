package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/endorse/pkg/audit"
	"github.com/Sumatoshi-tech/endorse/pkg/gitlib"
	"github.com/Sumatoshi-tech/endorse/pkg/report"
	"github.com/Sumatoshi-tech/endorse/pkg/terminal"
)

func exclusiveSummary() report.Summary {
	totals := audit.Totals{Scanned: 3, Authored: 1, Touched: 1, Ignored: 1}
	totals.Trailers[audit.SignedOffBy] = 1

	return report.New(report.Header{
		Repository: "/src/linux",
		Targets:    []string{"jane@example.com"},
		Match:      audit.MatchExact,
	}, totals, audit.ReportExclusive)
}

func additiveSummary() report.Summary {
	totals := audit.Totals{Scanned: 10, Authored: 2}
	totals.Trailers[audit.SignedOffBy] = 3
	totals.Trailers[audit.ReviewedBy] = 1
	totals.Trailers[audit.ReportedBy] = 1

	return report.New(report.Header{
		Repository: "/src/linux/",
		Targets:    []string{"jane@example.com", "bob@example.com"},
		Match:      audit.MatchSubstring,
		Since:      "2024-01-05",
	}, totals, audit.ReportAdditive)
}

func TestTitleAndSubtitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "linux", exclusiveSummary().Title())
	assert.Equal(t, "Overall", exclusiveSummary().Subtitle())

	assert.Equal(t, "linux", additiveSummary().Title())
	assert.Equal(t, "2024-01-05 -- Today", additiveSummary().Subtitle())

	root := report.New(report.Header{Repository: "/"}, audit.Totals{}, audit.ReportExclusive)
	assert.Equal(t, "repository", root.Title())
}

func TestTable_Exclusive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []report.Entry{
		{Label: "Authored", Value: 1},
		{Label: "Touched", Value: 1},
		{Label: "Ignored", Value: 1},
	}, exclusiveSummary().Table())
}

func TestTable_Additive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []report.Entry{
		{Label: "Authored", Value: 2},
		{Label: "Signed-off", Value: 3},
		{Label: "Reviewed", Value: 1},
		{Label: "Acked", Value: 0},
		{Label: "Tested", Value: 0},
		{Label: "Reported", Value: 1},
		{Label: "No interaction", Value: 3},
	}, additiveSummary().Table())
}

func TestChartable(t *testing.T) {
	t.Parallel()

	assert.True(t, exclusiveSummary().Chartable())

	empty := report.New(report.Header{Repository: "/tmp/empty"}, audit.Totals{}, audit.ReportExclusive)
	assert.False(t, empty.Chartable())
	assert.Equal(t, []report.Entry{
		{Label: "Authored", Value: 0},
		{Label: "Touched", Value: 0},
		{Label: "Ignored", Value: 0},
	}, empty.Table())
}

func TestWriteText_Exclusive(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, exclusiveSummary().WriteText(&buf, terminal.Config{Width: 80, NoColor: true}))

	out := buf.String()
	assert.Contains(t, out, "COMMIT AUDIT")
	assert.Contains(t, out, "/src/linux")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "Overall")
	assert.Contains(t, out, "Total Scanned")
	assert.Contains(t, out, "Signed-off-by")
	assert.NotContains(t, out, "No interaction")
	assert.NotContains(t, out, "\x1b[")

	// Scan header, totals, categories, trailers.
	scan := strings.Index(out, "Scan")
	summary := strings.Index(out, "Summary")
	categories := strings.Index(out, "Categories")
	trailers := strings.Index(out, "Trailers")

	assert.Less(t, scan, summary)
	assert.Less(t, summary, categories)
	assert.Less(t, categories, trailers)
}

func TestWriteText_Additive(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, additiveSummary().WriteText(&buf, terminal.Config{Width: 80, NoColor: true}))

	out := buf.String()
	assert.Contains(t, out, "Target Emails")
	assert.Contains(t, out, "jane@example.com, bob@example.com")
	assert.Contains(t, out, "Since 2024-01-05")
	assert.Contains(t, out, "No interaction")
	assert.Contains(t, out, "substring")
	assert.Contains(t, out, "additive")
}

func TestWriteText_Thousands(t *testing.T) {
	t.Parallel()

	summary := report.New(report.Header{Repository: "/src/big", Targets: []string{"a@b"}},
		audit.Totals{Scanned: 1234567, Ignored: 1234567}, audit.ReportExclusive)

	var buf bytes.Buffer

	require.NoError(t, summary.WriteText(&buf, terminal.Config{Width: 80, NoColor: true}))
	assert.Contains(t, buf.String(), "1,234,567")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, exclusiveSummary().WriteJSON(&buf))

	var doc map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "linux", doc["title"])
	assert.Equal(t, "exclusive", doc["mode"])
	assert.InDelta(t, 3, doc["scanned"], 0)
	assert.InDelta(t, 1, doc["touched"], 0)
	assert.NotContains(t, doc, "no_interaction")
	assert.NotContains(t, doc, "since")

	trailers, ok := doc["trailers"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1, trailers["signed-off-by"], 0)
	assert.InDelta(t, 0, trailers["reported-by"], 0)
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, additiveSummary().WriteYAML(&buf))

	var doc struct {
		Since         string         `yaml:"since"`
		Mode          string         `yaml:"mode"`
		NoInteraction *int           `yaml:"no_interaction"`
		Touched       *int           `yaml:"touched"`
		Trailers      map[string]int `yaml:"trailers"`
		Categories    []report.Entry `yaml:"categories"`
	}

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2024-01-05", doc.Since)
	assert.Equal(t, "additive", doc.Mode)
	require.NotNil(t, doc.NoInteraction)
	assert.Equal(t, 3, *doc.NoInteraction)
	assert.Nil(t, doc.Touched)
	assert.Equal(t, 3, doc.Trailers["signed-off-by"])
	assert.Len(t, doc.Categories, 7)
}

func TestVerboseLine(t *testing.T) {
	t.Parallel()

	commit := audit.Commit{
		Hash:    hashOf("a1b2c3d4e5f60718293a4b5c6d7e8f9012345678"),
		When:    time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC),
		Summary: "Fix the frobnicator",
	}

	assert.Equal(t, "a1b2c3d | 2024-01-10 | Fix the frobnicator", report.VerboseLine(commit))

	commit.Summary = ""
	assert.Equal(t, "a1b2c3d | 2024-01-10 | No message", report.VerboseLine(commit))
}

// hashOf parses a fixed hex literal.
func hashOf(s string) gitlib.Hash {
	h, err := gitlib.ParseHash(s)
	if err != nil {
		panic(err)
	}

	return h
}
