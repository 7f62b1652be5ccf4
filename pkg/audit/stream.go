package audit

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Sumatoshi-tech/endorse/pkg/gitlib"
)

// Commit is one history record as seen by the classifier.
type Commit struct {
	Hash        gitlib.Hash
	AuthorName  string
	AuthorEmail string // Empty when absent.
	When        time.Time
	Summary     string
	Message     string
	HasMessage  bool
}

// Source yields commits newest first and returns io.EOF when exhausted.
type Source interface {
	Next() (Commit, error)
}

// Stream applies the time cutoff to a Source and counts what it emits.
// Once it stops it stays stopped.
type Stream struct {
	src     Source
	cutoff  *time.Time
	scanned int
	done    bool
}

// NewStream wraps src. A nil cutoff emits the whole history.
func NewStream(src Source, cutoff *time.Time) *Stream {
	return &Stream{src: src, cutoff: cutoff}
}

// Next returns the next commit at or after the cutoff, or io.EOF.
// The first commit strictly older than the cutoff ends the stream.
func (s *Stream) Next() (Commit, error) {
	if s.done {
		return Commit{}, io.EOF
	}

	commit, err := s.src.Next()
	if errors.Is(err, io.EOF) {
		s.done = true

		return Commit{}, io.EOF
	}

	if err != nil {
		s.done = true

		return Commit{}, fmt.Errorf("read commit: %w", err)
	}

	if s.cutoff != nil && commit.When.Before(*s.cutoff) {
		s.done = true

		return Commit{}, io.EOF
	}

	s.scanned++

	return commit, nil
}

// Scanned returns how many commits have been emitted.
func (s *Stream) Scanned() int {
	return s.scanned
}
