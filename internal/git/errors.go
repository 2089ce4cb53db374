package git

import "errors"

var (
	// ErrBranchesUnavailable indicates git branch -a failed or printed nothing.
	ErrBranchesUnavailable = errors.New("failed to get branches")

	// ErrNoBranches indicates every listed branch was filtered out.
	ErrNoBranches = errors.New("no branches found")

	// ErrNoCommits indicates git log failed or printed nothing.
	ErrNoCommits = errors.New("failed to get commits")

	// ErrNoCommitHash indicates a log line carries no abbreviated hash.
	ErrNoCommitHash = errors.New("could not extract commit hash")
)
