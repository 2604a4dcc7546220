package gitconfig

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/zjrosen/gitpanes/internal/event"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	View    key.Binding
	Refresh key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/collapse")),
	View:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "summary/detailed")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
}

// ShortHelp returns the bindings shown in the host help bar.
func (m Model) ShortHelp() []key.Binding {
	if m.mode == event.ViewDetailed {
		return []key.Binding{keys.Up, keys.Down, keys.View, keys.Refresh}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.View, keys.Refresh}
}
