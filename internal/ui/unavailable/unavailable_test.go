package unavailable

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
)

func TestSetSize(t *testing.T) {
	m := New("t", "m").SetSize(120, 40)
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)

	m2 := m.SetSize(80, 24)
	require.Equal(t, 80, m2.width)
	require.Equal(t, 120, m.width, "original unchanged")
}

func TestView_EmptyBeforeSized(t *testing.T) {
	require.Empty(t, New("t", "m").View())
}

func TestView_Content(t *testing.T) {
	view := ansi.Strip(ForSlice("Commits").SetSize(80, 12).View())
	require.Contains(t, view, "Commits unavailable")
	require.Contains(t, view, "does not provide Commits")
}

func TestView_Hints(t *testing.T) {
	view := ansi.Strip(New("No data", "", "Press q to quit").SetSize(60, 10).View())
	require.Contains(t, view, "No data")
	require.Contains(t, view, "Press q to quit")
}

func TestUpdate_WindowSize(t *testing.T) {
	updated, cmd := New("t", "m").Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := updated.(Model)
	require.Equal(t, 80, m.width)
	require.Equal(t, 24, m.height)
	require.Nil(t, cmd)
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(key.String(), func(t *testing.T) {
			_, cmd := New("t", "m").SetSize(80, 24).Update(key)
			require.NotNil(t, cmd)
			_, isQuit := cmd().(tea.QuitMsg)
			require.True(t, isQuit)
		})
	}
}

func TestProgram_QuitsOnQ(t *testing.T) {
	tm := teatest.NewTestModel(t, New("Nothing to show", "No fixture data found."),
		teatest.WithInitialTermSize(80, 24))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	require.Equal(t, 80, final.width)
	require.Contains(t, ansi.Strip(final.View()), "Nothing to show")
}
