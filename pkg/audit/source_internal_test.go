package audit //nolint:testpackage // exercises the unexported record builder.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/endorse/pkg/gitlib"
)

func TestRecordFrom(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 5, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	author := gitlib.Signature{Name: "Jane", Email: "jane@example.com", When: when.Add(-time.Hour)}
	committer := gitlib.Signature{Name: "Bot", Email: "bot@example.com", When: when}

	hash, err := gitlib.ParseHash("abcdef0123456789abcdef0123456789abcdef01")
	require.NoError(t, err)

	got := recordFrom(hash, author, committer, "subject\n\nbody\n", "subject")

	assert.Equal(t, hash, got.Hash)

	assert.Equal(t, "jane@example.com", got.AuthorEmail)
	assert.Equal(t, "Jane", got.AuthorName)
	assert.True(t, got.HasMessage)
	assert.Equal(t, "subject", got.Summary)
	assert.Equal(t, time.UTC, got.When.Location())
	assert.True(t, when.Equal(got.When))
}

func TestRecordFrom_InvalidUTF8IsAbsent(t *testing.T) {
	t.Parallel()

	bad := "caf\xe9"
	author := gitlib.Signature{Email: bad}

	got := recordFrom(gitlib.Hash{}, author, gitlib.Signature{}, bad, bad)

	assert.Empty(t, got.AuthorEmail)
	assert.False(t, got.HasMessage)
	assert.Empty(t, got.Message)
	assert.Empty(t, got.Summary)
}
