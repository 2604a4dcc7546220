// Package application defines the ports the host uses to obtain git data and
// the adapters layered on top of them.
package application

import (
	"context"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

// Loader supplies the data behind the panels' slices and the commit detail
// fetched on selection. Implementations must be safe for concurrent use.
type Loader interface {
	// Commits returns the commit history in any order; panels sort it.
	Commits(ctx context.Context) ([]domain.CommitInfo, error)
	// CommitDetail returns stats and files for one commit. It returns an
	// error wrapping domain.ErrCommitNotFound for unknown hashes.
	CommitDetail(ctx context.Context, hash string) (domain.CommitDetail, error)
	PullRequests(ctx context.Context) ([]domain.PullRequest, error)
	GitConfig(ctx context.Context) (domain.GitConfig, error)
}
