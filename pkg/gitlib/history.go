package gitlib

import (
	"errors"
	"fmt"
	"io"

	git2go "github.com/libgit2/git2go/v34"
)

// Log returns the history reachable from HEAD, newest commit first.
// A repository without any commit yields an iterator that is immediately exhausted.
func (r *Repository) Log() (*CommitIter, error) {
	empty, err := r.IsEmpty()
	if err != nil {
		return nil, err
	}

	if empty {
		return &CommitIter{repo: r}, nil
	}

	head, err := r.Head()
	if err != nil {
		return nil, err
	}

	walk, err := r.repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}

	err = walk.Push(head.ToOid())
	if err != nil {
		walk.Free()

		return nil, fmt.Errorf("push HEAD to revwalk: %w", err)
	}

	// Same order as `git log` on a linear history.
	walk.Sorting(git2go.SortTime)

	return &CommitIter{walk: walk, repo: r}, nil
}

// CommitIter yields the commits of a Log walk one at a time.
type CommitIter struct {
	walk *git2go.RevWalk
	repo *Repository
}

// Next returns the next commit, or io.EOF once the walk is exhausted.
// A commit the walk references but the object database cannot resolve is an error,
// and so is any traversal failure. Both end the walk.
func (ci *CommitIter) Next() (*Commit, error) {
	if ci.walk == nil {
		return nil, io.EOF
	}

	oid := new(git2go.Oid)

	err := ci.walk.Next(oid)
	if err != nil {
		ci.Close()

		if isIterOver(err) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("revwalk next: %w", err)
	}

	commit, err := ci.repo.LookupCommit(HashFromOid(oid))
	if err != nil {
		ci.Close()

		return nil, err
	}

	return commit, nil
}

// Close releases the walk. It is safe to call more than once.
func (ci *CommitIter) Close() {
	if ci.walk != nil {
		ci.walk.Free()
		ci.walk = nil
	}
}

func isIterOver(err error) bool {
	var gitErr *git2go.GitError

	return errors.As(err, &gitErr) && gitErr.Code == git2go.ErrorCodeIterOver
}
