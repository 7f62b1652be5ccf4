package audit

import (
	"strings"
)

// Kind is one recognised trailer annotation.
type Kind int

// Trailer kinds in prefix-test order.
const (
	SignedOffBy Kind = iota
	ReviewedBy
	AckedBy
	TestedBy
	ReportedBy

	// NumKinds is the number of trailer kinds.
	NumKinds = int(ReportedBy) + 1
)

type trailerPrefix struct {
	prefix string
	kind   Kind
}

// trailerPrefixes is tested in order; the first prefix a line starts with wins.
var trailerPrefixes = [NumKinds]trailerPrefix{
	{"signed-off-by:", SignedOffBy},
	{"reviewed-by:", ReviewedBy},
	{"acked-by:", AckedBy},
	{"tested-by:", TestedBy},
	{"reported-by:", ReportedBy},
}

var kindNames = [NumKinds]string{"signed-off-by", "reviewed-by", "acked-by", "tested-by", "reported-by"}

// String returns the lower-case trailer token without the colon.
func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return "unknown"
	}

	return kindNames[k]
}

// AllKinds returns every kind in prefix-test order.
func AllKinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}

	return kinds
}

// parseTrailer maps an already trimmed and lower-cased line to its kind.
func parseTrailer(line string) (Kind, bool) {
	for _, tp := range trailerPrefixes {
		if strings.HasPrefix(line, tp.prefix) {
			return tp.kind, true
		}
	}

	return 0, false
}

// KindSet is the set of kinds latched for one commit.
type KindSet uint8

// Add latches k. Adding a kind twice is a no-op.
func (s KindSet) Add(k Kind) KindSet {
	return s | 1<<uint(k)
}

// Has reports whether k is latched.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<uint(k)) != 0
}

// Empty reports whether no kind is latched.
func (s KindSet) Empty() bool {
	return s == 0
}

// Len returns the number of latched kinds.
func (s KindSet) Len() int {
	n := 0

	for k := range NumKinds {
		if s.Has(Kind(k)) {
			n++
		}
	}

	return n
}

// Kinds returns the latched kinds in prefix-test order.
func (s KindSet) Kinds() []Kind {
	var kinds []Kind

	for k := range NumKinds {
		if s.Has(Kind(k)) {
			kinds = append(kinds, Kind(k))
		}
	}

	return kinds
}

// SelfTrailers decides what happens to a trailer naming the commit's own (target) author.
type SelfTrailers int

const (
	// SelfTrailersIgnore skips trailer lines that name the matched author of the same commit.
	SelfTrailersIgnore SelfTrailers = iota
	// SelfTrailersCount counts such lines like any other.
	SelfTrailersCount
)

// String returns the flag spelling of the policy.
func (p SelfTrailers) String() string {
	if p == SelfTrailersCount {
		return "count"
	}

	return "ignore"
}

// Classifier extracts trailer kinds that reference the targets from commit messages.
type Classifier struct {
	targets Targets
	self    SelfTrailers
}

// NewClassifier creates a classifier for targets under the given self-trailer policy.
func NewClassifier(targets Targets, self SelfTrailers) *Classifier {
	return &Classifier{targets: targets, self: self}
}

// Classify returns the kinds latched by msg. Trailer relevance always uses substring
// matching against the targets. selfEmail is the author email when the author matched
// a target, otherwise empty; with SelfTrailersIgnore lines whose identity equals it
// are skipped.
// An absent message yields the empty set.
func (c *Classifier) Classify(msg string, hasMessage bool, selfEmail string) KindSet {
	var set KindSet

	if !hasMessage {
		return set
	}

	self := ""
	if c.self == SelfTrailersIgnore {
		self = strings.ToLower(strings.TrimSpace(selfEmail))
	}

	for line := range strings.Lines(msg) {
		lower := strings.ToLower(strings.TrimSpace(line))

		kind, ok := parseTrailer(lower)
		if !ok || set.Has(kind) {
			continue
		}

		if !c.targets.matchLowered(lower, MatchSubstring) {
			continue
		}

		if self != "" && trailerIdentity(lower) == self {
			continue
		}

		set = set.Add(kind)
	}

	return set
}

// trailerIdentity returns the email a trailer line names: the text inside the
// angle brackets when present, otherwise the whole value after the colon.
func trailerIdentity(line string) string {
	_, value, _ := strings.Cut(line, ":")

	if _, rest, ok := strings.Cut(value, "<"); ok {
		if addr, _, closed := strings.Cut(rest, ">"); closed {
			value = addr
		}
	}

	return strings.TrimSpace(value)
}
