package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitpanes/internal/git/application"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/mocks"
	"github.com/zjrosen/gitpanes/internal/slice"
)

func TestRegisterSlices(t *testing.T) {
	l := mocks.NewMockLoader(t)
	commits := []domain.CommitInfo{{Hash: hash, Message: "m"}}
	l.EXPECT().Commits(mock.Anything).Return(commits, nil).Once()
	l.EXPECT().PullRequests(mock.Anything).Return(nil, errors.New("forge down")).Once()
	l.EXPECT().GitConfig(mock.Anything).Return(domain.GitConfig{User: domain.UserConfig{Name: "Ada"}}, nil).Once()

	store := slice.NewMemoryStore()
	application.RegisterSlices(store, slice.ScopeRepository, l)
	for _, name := range slice.Names() {
		require.True(t, store.HasSlice(name), name)
	}

	err := store.Refresh(context.Background(), slice.ScopeAny, "")
	require.ErrorContains(t, err, "forge down")

	c, ok := slice.Get(store, slice.Commits)
	require.True(t, ok)
	require.Equal(t, commits, c.Data)

	prs, ok := slice.Get(store, slice.PullRequests)
	require.True(t, ok)
	require.False(t, prs.HasData)
	require.Equal(t, "forge down", prs.Err)

	cfg, ok := slice.Get(store, slice.GitConfig)
	require.True(t, ok)
	require.Equal(t, "Ada", cfg.Data.User.Name)
}
