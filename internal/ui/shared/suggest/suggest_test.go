package suggest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tools() []Item {
	return []Item{
		{Name: "refresh_commit_history", Description: "Reload commits"},
		{Name: "select_commit", Description: "Open a commit"},
		{Name: "filter_pull_requests", Description: "Filter pull requests"},
		{Name: "set_git_config_view", Description: "Switch config view"},
	}
}

func names(its []Item) []string {
	out := make([]string, len(its))
	for i, it := range its {
		out[i] = it.Name
	}
	return out
}

func TestNew(t *testing.T) {
	m := New(tools()...)
	assert.False(t, m.Active())
	assert.Empty(t, m.Query())
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Empty(t, m.View(40))
}

func TestActivate_EmptyQueryKeepsOrder(t *testing.T) {
	m := New(tools()...).Activate("")
	require.True(t, m.Active())
	require.Equal(t, names(tools()), names(m.Filtered()))

	it, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "refresh_commit_history", it.Name)
}

func TestSetQuery_Fuzzy(t *testing.T) {
	m := New(tools()...).Activate("selcom")
	require.Equal(t, []string{"select_commit"}, names(m.Filtered()))

	m = m.SetQuery("pull")
	require.Equal(t, []string{"filter_pull_requests"}, names(m.Filtered()))

	m = m.SetQuery("zzz")
	require.Empty(t, m.Filtered())
	_, ok := m.Selected()
	require.False(t, ok)
}

func TestNextPrevWrap(t *testing.T) {
	m := New(tools()...).Activate("")
	m = m.Prev()
	it, _ := m.Selected()
	require.Equal(t, "set_git_config_view", it.Name)

	m = m.Next()
	it, _ = m.Selected()
	require.Equal(t, "refresh_commit_history", it.Name)
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	var many []Item
	for _, c := range "abcdefghij" {
		many = append(many, Item{Name: "tool_" + string(c)})
	}
	m := New(many...).Activate("")
	for range 7 {
		m = m.Next()
	}
	require.Equal(t, 7, m.cursor)
	require.Equal(t, 2, m.scrollOffset)

	view := ansi.Strip(m.View(30))
	require.Contains(t, view, "tool_h")
	require.NotContains(t, view, "tool_a")
}

func TestHandleKey(t *testing.T) {
	m := New(tools()...).Activate("")

	m, consumed, accepted := m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, consumed)
	require.Nil(t, accepted)

	m, consumed, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.False(t, consumed, "typing belongs to the input")

	m, consumed, accepted = m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, consumed)
	require.NotNil(t, accepted)
	require.Equal(t, "select_commit", accepted.Name)
	require.False(t, m.Active())
}

func TestHandleKey_Inactive(t *testing.T) {
	_, consumed, accepted := New(tools()...).HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, consumed)
	require.Nil(t, accepted)
}

func TestView_ShowsDescriptions(t *testing.T) {
	view := ansi.Strip(New(tools()...).Activate("commit").View(60))
	require.Contains(t, view, "select_commit")
	require.Contains(t, view, "Open a commit")
	require.Contains(t, view, "╭")
}
