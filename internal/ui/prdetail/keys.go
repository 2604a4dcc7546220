package prdetail

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Copy  key.Binding
	Close key.Binding
}

var keys = keyMap{
	Copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
	Close: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
}

// ShortHelp returns the bindings shown in the host help bar.
func (m Model) ShortHelp() []key.Binding {
	if m.state == StateEmpty {
		return nil
	}
	return []key.Binding{keys.Copy, keys.Close}
}
