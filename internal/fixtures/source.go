package fixtures

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/zjrosen/gitpanes/internal/git/application"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
)

// Source implements application.Loader over a dataset. Reload swaps the
// dataset atomically; callers always see a complete snapshot.
type Source struct {
	path string

	mu sync.RWMutex
	ds *Dataset
}

var _ application.Loader = (*Source)(nil)

// NewSource loads the dataset at path, or the embedded demo when path is
// empty.
func NewSource(path string) (*Source, error) {
	s := &Source{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// FromDataset wraps an in-memory dataset. Reload is a no-op.
func FromDataset(ds *Dataset) *Source {
	return &Source{ds: ds}
}

// Path returns the file backing the source, or "" for the demo dataset.
func (s *Source) Path() string { return s.path }

// Reload re-reads the backing file. On failure the previous dataset is kept.
func (s *Source) Reload() error {
	var (
		ds  *Dataset
		err error
	)
	switch {
	case s.path != "":
		var f *os.File
		f, err = os.Open(s.path)
		if err != nil {
			return fmt.Errorf("opening fixtures: %w", err)
		}
		defer f.Close()
		ds, err = Decode(f)
		if err != nil {
			return fmt.Errorf("%s: %w", s.path, err)
		}
	case s.ds == nil:
		ds, err = Demo()
		if err != nil {
			return err
		}
	default:
		return nil
	}

	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()
	log.Info(log.CatHost, "fixtures loaded",
		"path", s.path,
		"commits", len(ds.Commits),
		"pull_requests", len(ds.PullRequests))
	return nil
}

func (s *Source) snapshot() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// Commits implements application.Loader.
func (s *Source) Commits(ctx context.Context) ([]domain.CommitInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.snapshot().Commits), nil
}

// CommitDetail implements application.Loader.
func (s *Source) CommitDetail(ctx context.Context, hash string) (domain.CommitDetail, error) {
	if err := ctx.Err(); err != nil {
		return domain.CommitDetail{}, err
	}
	return s.snapshot().Detail(hash)
}

// PullRequests implements application.Loader.
func (s *Source) PullRequests(ctx context.Context) ([]domain.PullRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.snapshot().PullRequests), nil
}

// GitConfig implements application.Loader.
func (s *Source) GitConfig(ctx context.Context) (domain.GitConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.GitConfig{}, err
	}
	return s.snapshot().GitConfig, nil
}
