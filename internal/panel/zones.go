package panel

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zones tracks clickable regions for every panel. The host scans its final
// view with Zones.Scan.
var Zones = zone.New()

// Clicked reports whether msg is a left click released inside the zone id.
func Clicked(msg tea.MouseMsg, id string) bool {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	z := Zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// StatusMsg reports the outcome of a panel action to the host status bar.
type StatusMsg struct {
	Text string
	Err  error
}

// Copy returns a command copying text to clip and reporting the result.
func Copy(clip Clipboard, text, what string) tea.Cmd {
	if clip == nil || text == "" {
		return nil
	}
	return func() tea.Msg {
		if err := clip.Copy(text); err != nil {
			return StatusMsg{Text: "copy failed", Err: err}
		}
		return StatusMsg{Text: "Copied " + what}
	}
}
