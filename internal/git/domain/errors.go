package domain

import "errors"

// Domain errors for git entities.
var (
	// ErrInvalidPullRequestState indicates state, closed_at and merged_at disagree.
	ErrInvalidPullRequestState = errors.New("invalid pull request state")

	// ErrInvalidHash indicates a commit hash that is not 40 hex characters.
	ErrInvalidHash = errors.New("invalid commit hash")

	// ErrCommitNotFound is returned when no detail exists for a hash.
	ErrCommitNotFound = errors.New("commit not found")

	// ErrPullRequestNotFound is returned when no pull request has the given number.
	ErrPullRequestNotFound = errors.New("pull request not found")
)
