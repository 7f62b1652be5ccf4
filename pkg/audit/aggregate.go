package audit

import (
	"errors"
	"fmt"
)

// ErrInvariant is returned when the exclusive buckets stop summing to the scanned total.
var ErrInvariant = errors.New("bucket invariant violated")

// ReportMode selects the counting policy.
type ReportMode int

const (
	// ReportExclusive puts every commit in exactly one of authored, touched or ignored.
	ReportExclusive ReportMode = iota
	// ReportAdditive counts authorship and trailers independently and derives a
	// residual no-interaction bucket afterwards.
	ReportAdditive
)

// String returns the flag spelling of the mode.
func (m ReportMode) String() string {
	if m == ReportAdditive {
		return "additive"
	}

	return "exclusive"
}

// DefaultReportMode picks exclusive for a single identity and additive otherwise.
func DefaultReportMode(targets Targets) ReportMode {
	if targets.Len() > 1 {
		return ReportAdditive
	}

	return ReportExclusive
}

// Result is the classification of one commit.
type Result struct {
	Authored bool
	Kinds    KindSet
}

// Totals holds the run counters.
type Totals struct {
	Scanned  int
	Authored int
	// Touched and Ignored are only maintained in exclusive mode.
	Touched  int
	Ignored  int
	Trailers [NumKinds]int
}

// Trailer returns the counter for kind k.
func (t Totals) Trailer(k Kind) int {
	return t.Trailers[k]
}

// TrailerSum returns the sum of all trailer counters.
func (t Totals) TrailerSum() int {
	sum := 0
	for _, n := range t.Trailers {
		sum += n
	}

	return sum
}

// NoInteraction is the additive-mode residual: scanned commits not accounted for by
// authorship or trailers, floored at zero.
func (t Totals) NoInteraction() int {
	return max(0, t.Scanned-(t.Authored+t.TrailerSum()))
}

// Aggregator owns the totals for one run.
type Aggregator struct {
	mode   ReportMode
	totals Totals
}

// NewAggregator creates an aggregator with zeroed totals.
func NewAggregator(mode ReportMode) *Aggregator {
	return &Aggregator{mode: mode}
}

// Mode returns the counting policy.
func (a *Aggregator) Mode() ReportMode {
	return a.mode
}

// Totals returns a snapshot of the counters.
func (a *Aggregator) Totals() Totals {
	return a.totals
}

// Add accounts for one scanned commit. Each latched kind adds exactly one.
func (a *Aggregator) Add(res Result) error {
	t := &a.totals

	t.Scanned++

	if res.Authored {
		t.Authored++
	}

	for _, k := range res.Kinds.Kinds() {
		t.Trailers[k]++
	}

	if a.mode == ReportAdditive {
		return nil
	}

	switch {
	case res.Authored:
	case !res.Kinds.Empty():
		t.Touched++
	default:
		t.Ignored++
	}

	if t.Scanned != t.Authored+t.Touched+t.Ignored {
		return fmt.Errorf("%w: scanned=%d authored=%d touched=%d ignored=%d",
			ErrInvariant, t.Scanned, t.Authored, t.Touched, t.Ignored)
	}

	return nil
}
