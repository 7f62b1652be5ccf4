// Package report turns audit totals into the text, JSON and YAML summaries and
// into the label/value table the chart is drawn from.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Sumatoshi-tech/endorse/pkg/audit"
)

const (
	overallSubtitle = "Overall"
	noMessage       = "No message"
	fallbackTitle   = "repository"
)

// Category labels.
const (
	LabelAuthored      = "Authored"
	LabelTouched       = "Touched"
	LabelIgnored       = "Ignored"
	LabelNoInteraction = "No interaction"
)

var kindLabels = [audit.NumKinds]string{
	audit.SignedOffBy: "Signed-off",
	audit.ReviewedBy:  "Reviewed",
	audit.AckedBy:     "Acked",
	audit.TestedBy:    "Tested",
	audit.ReportedBy:  "Reported",
}

// KindLabel is the category label of a trailer kind in additive reports.
func KindLabel(k audit.Kind) string {
	if k < 0 || int(k) >= audit.NumKinds {
		return k.String()
	}

	return kindLabels[k]
}

// Header describes the scan that produced the totals.
type Header struct {
	// Repository is the scanned directory, preferably absolute.
	Repository string
	Targets    []string
	Match      audit.MatchMode
	// Since is the cutoff date as typed, empty for the whole history.
	Since string
}

// Entry is one label/value row of the category table.
type Entry struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Summary is the finished result of one run.
type Summary struct {
	header Header
	totals audit.Totals
	mode   audit.ReportMode
}

// New builds a Summary.
func New(header Header, totals audit.Totals, mode audit.ReportMode) Summary {
	return Summary{header: header, totals: totals, mode: mode}
}

// Totals returns the raw counters.
func (s Summary) Totals() audit.Totals { return s.totals }

// Mode returns the counting policy the totals were produced with.
func (s Summary) Mode() audit.ReportMode { return s.mode }

// Title is the repository directory name.
func (s Summary) Title() string {
	base := filepath.Base(filepath.Clean(s.header.Repository))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return fallbackTitle
	}

	return base
}

// Subtitle is "<since> -- Today" for a bounded run and "Overall" otherwise.
func (s Summary) Subtitle() string {
	if s.header.Since == "" {
		return overallSubtitle
	}

	return s.header.Since + " -- Today"
}

// Table returns the categories in display order. Exclusive reports have
// Authored, Touched and Ignored; additive reports have Authored, one row per
// trailer kind and the No interaction residual.
func (s Summary) Table() []Entry {
	if s.mode == audit.ReportExclusive {
		return []Entry{
			{LabelAuthored, s.totals.Authored},
			{LabelTouched, s.totals.Touched},
			{LabelIgnored, s.totals.Ignored},
		}
	}

	entries := make([]Entry, 0, audit.NumKinds+2)
	entries = append(entries, Entry{LabelAuthored, s.totals.Authored})

	for _, k := range audit.AllKinds() {
		entries = append(entries, Entry{KindLabel(k), s.totals.Trailer(k)})
	}

	return append(entries, Entry{LabelNoInteraction, s.totals.NoInteraction()})
}

// Chartable reports whether a chart should be drawn. Nothing is drawn when no
// commit was scanned.
func (s Summary) Chartable() bool {
	return s.totals.Scanned > 0
}

// VerboseLine formats an authored commit as "<short hash> | <date> | <summary>".
func VerboseLine(c audit.Commit) string {
	summary := c.Summary
	if summary == "" {
		summary = noMessage
	}

	return fmt.Sprintf("%s | %s | %s", c.Hash.Short(), c.When.UTC().Format(time.DateOnly), summary)
}
