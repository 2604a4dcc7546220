package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	QuitList   key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	RefreshAll key.Binding
	Palette    key.Binding
	Help       key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	QuitList:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	NextTab:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
	PrevTab:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev tab")),
	Tab1:       key.NewBinding(key.WithKeys("1")),
	Tab2:       key.NewBinding(key.WithKeys("2")),
	Tab3:       key.NewBinding(key.WithKeys("3")),
	FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	FocusPrev:  key.NewBinding(key.WithKeys("shift+tab")),
	RefreshAll: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload all")),
	Palette:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "run tool")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.NextTab, k.Palette, k.Help, k.QuitList}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.FocusNext},
		{k.RefreshAll, k.Palette},
		{k.Help, k.QuitList, k.Quit},
	}
}
