// Package gitlib reads commit history from local repositories through libgit2.
package gitlib

import (
	"encoding/hex"
	"errors"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

const (
	// HashSize is the size of a SHA-1 object name in bytes.
	HashSize = 20
	// HashHexSize is the length of a hex-encoded object name.
	HashHexSize = HashSize * 2
	// ShortHashSize is the abbreviation length used by git log --oneline.
	ShortHashSize = 7
)

// ErrInvalidHash is returned by ParseHash for malformed object names.
var ErrInvalidHash = errors.New("invalid object name")

// Hash is a git object name (SHA-1).
type Hash [HashSize]byte

// ParseHash decodes a full hex object name, in either case.
func ParseHash(s string) (Hash, error) {
	var h Hash

	if len(s) != HashHexSize {
		return h, fmt.Errorf("%w: %q has %d digits", ErrInvalidHash, s, len(s))
	}

	_, err := hex.Decode(h[:], []byte(s))
	if err != nil {
		return Hash{}, fmt.Errorf("%w: %q: %w", ErrInvalidHash, s, err)
	}

	return h, nil
}

// HashFromOid converts a libgit2 Oid to Hash.
func HashFromOid(oid *git2go.Oid) Hash {
	return Hash(*oid)
}

// String returns the full lower-case hex form.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first ShortHashSize hex digits.
func (h Hash) Short() string {
	return h.String()[:ShortHashSize]
}

// IsZero reports whether h is the all-zero name.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// ToOid converts h back to a libgit2 Oid.
func (h Hash) ToOid() *git2go.Oid {
	oid := git2go.Oid(h)

	return &oid
}
