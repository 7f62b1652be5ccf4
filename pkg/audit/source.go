package audit

import (
	"unicode/utf8"

	"github.com/Sumatoshi-tech/endorse/pkg/gitlib"
)

// RepoSource adapts a libgit2 commit iterator to Source.
type RepoSource struct {
	iter *gitlib.CommitIter
}

// NewRepoSource wraps iter. The caller keeps ownership of iter and must Close it.
func NewRepoSource(iter *gitlib.CommitIter) *RepoSource {
	return &RepoSource{iter: iter}
}

// Next reads the next commit and copies out what classification needs.
func (rs *RepoSource) Next() (Commit, error) {
	native, err := rs.iter.Next()
	if err != nil {
		return Commit{}, err
	}
	defer native.Free()

	return recordFrom(native.Hash(), native.Author(), native.Committer(), native.Message(), native.Summary()), nil
}

// recordFrom builds a Commit; bytes that are not valid UTF-8 count as absent.
func recordFrom(hash gitlib.Hash, author, committer gitlib.Signature, msg, summary string) Commit {
	email := author.Email
	if !utf8.ValidString(email) {
		email = ""
	}

	hasMessage := utf8.ValidString(msg)
	if !hasMessage {
		msg = ""
	}

	if !utf8.ValidString(summary) {
		summary = ""
	}

	return Commit{
		Hash:        hash,
		AuthorName:  author.Name,
		AuthorEmail: email,
		When:        committer.When.UTC(),
		Summary:     summary,
		Message:     msg,
		HasMessage:  hasMessage,
	}
}
