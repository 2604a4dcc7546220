package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const oneCommit = "commits:\n  - hash: " + validHash + "\n    message: first\n    date: \"2024-01-01T00:00:00Z\"\n"

func TestNewSource_Demo(t *testing.T) {
	s, err := NewSource("")
	require.NoError(t, err)
	require.Empty(t, s.Path())

	commits, err := s.Commits(context.Background())
	require.NoError(t, err)
	require.Len(t, commits, 6)

	prs, err := s.PullRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, prs, 4)

	cfg, err := s.GitConfig(context.Background())
	require.NoError(t, err)
	require.Len(t, cfg.Remotes, 2)
}

func TestNewSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	writeFile(t, path, oneCommit)

	s, err := NewSource(path)
	require.NoError(t, err)
	commits, err := s.Commits(context.Background())
	require.NoError(t, err)
	require.Len(t, commits, 1)

	d, err := s.CommitDetail(context.Background(), validHash)
	require.NoError(t, err)
	require.Equal(t, "first", d.Subject())
}

func TestNewSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	writeFile(t, path, oneCommit)
	s, err := NewSource(path)
	require.NoError(t, err)

	writeFile(t, path, "commits:\n  - hash: nothex\n")
	require.ErrorIs(t, s.Reload(), domain.ErrInvalidHash)

	commits, err := s.Commits(context.Background())
	require.NoError(t, err)
	require.Len(t, commits, 1)
}

func TestSource_ReturnsCopies(t *testing.T) {
	s, err := NewSource("")
	require.NoError(t, err)
	a, _ := s.Commits(context.Background())
	a[0].Message = "mutated"
	b, _ := s.Commits(context.Background())
	require.NotEqual(t, "mutated", b[0].Message)
}

func TestSource_CanceledContext(t *testing.T) {
	s, err := NewSource("")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Commits(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.CommitDetail(ctx, validHash)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWatch_CallsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	writeFile(t, path, oneCommit)

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register before writing.
	require.Eventually(t, func() bool {
		writeFile(t, path, oneCommit)
		select {
		case <-changed:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.yaml")
	writeFile(t, path, oneCommit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 4)
	go func() { _ = Watch(ctx, path, 10*time.Millisecond, func() { changed <- struct{}{} }) }()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "other.yaml"), "x")

	select {
	case <-changed:
		t.Fatal("onChange called for an unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
}
