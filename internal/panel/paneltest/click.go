// Package paneltest holds helpers for driving panels in tests.
package paneltest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitpanes/internal/panel"
)

// Click scans view the way a host does and returns a left-button release on
// the top-left cell of zone id. Zones are recorded asynchronously, so it
// waits for the zone to appear.
func Click(t testing.TB, view, id string) tea.MouseMsg {
	t.Helper()
	panel.Zones.Scan(view)

	var z *zone.ZoneInfo
	require.Eventually(t, func() bool {
		z = panel.Zones.Get(id)
		return !z.IsZero()
	}, time.Second, 5*time.Millisecond, "zone %q never recorded", id)

	return tea.MouseMsg{
		X:      z.StartX,
		Y:      z.StartY,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	}
}

// Press returns a left-button press on the same cell as Click. Panels act on
// release only.
func Press(click tea.MouseMsg) tea.MouseMsg {
	click.Action = tea.MouseActionPress
	return click
}
