// Package audit classifies commits against a set of target identities and tallies
// authorship and trailer endorsements over a single pass of the history.
package audit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for target configuration.
var (
	ErrNoTargets   = errors.New("at least one target identity is required")
	ErrEmptyTarget = errors.New("target identity must not be blank")
)

// MatchMode selects how an author email is compared with the targets.
type MatchMode int

const (
	// MatchExact requires the whole email to equal a target.
	MatchExact MatchMode = iota
	// MatchSubstring accepts any email containing a target.
	MatchSubstring
)

// String returns the flag spelling of the mode.
func (m MatchMode) String() string {
	if m == MatchSubstring {
		return "substring"
	}

	return "exact"
}

// Targets is the ordered, lower-cased set of identities under audit.
type Targets struct {
	ids []string
}

// NewTargets lower-cases and validates the configured identities.
func NewTargets(ids ...string) (Targets, error) {
	if len(ids) == 0 {
		return Targets{}, ErrNoTargets
	}

	lowered := make([]string, 0, len(ids))

	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return Targets{}, fmt.Errorf("%w: position %d", ErrEmptyTarget, i)
		}

		lowered = append(lowered, strings.ToLower(id))
	}

	return Targets{ids: lowered}, nil
}

// IDs returns a copy of the lower-cased identities in configuration order.
func (t Targets) IDs() []string {
	return append([]string(nil), t.ids...)
}

// Len returns the number of identities.
func (t Targets) Len() int {
	return len(t.ids)
}

// Matches reports whether candidate refers to any target under mode.
// An empty candidate (absent email) never matches.
func (t Targets) Matches(candidate string, mode MatchMode) bool {
	if candidate == "" {
		return false
	}

	return t.matchLowered(strings.ToLower(candidate), mode)
}

func (t Targets) matchLowered(candidate string, mode MatchMode) bool {
	for _, id := range t.ids {
		switch mode {
		case MatchSubstring:
			if strings.Contains(candidate, id) {
				return true
			}
		default:
			if candidate == id {
				return true
			}
		}
	}

	return false
}
