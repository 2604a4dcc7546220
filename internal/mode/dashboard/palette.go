package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"

	"github.com/zjrosen/gitpanes/internal/tool"
	"github.com/zjrosen/gitpanes/internal/ui/shared/suggest"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// palette is the ":" prompt that invokes panel tools by name.
type palette struct {
	input   textinput.Model
	suggest suggest.Model
	active  bool
	width   int
}

func newPalette() palette {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "tool_name {json}"
	ti.CharLimit = 512

	descs := tool.Catalog()
	items := make([]suggest.Item, len(descs))
	for i, d := range descs {
		items[i] = suggest.Item{Name: d.Name, Description: d.Description}
	}
	return palette{input: ti, suggest: suggest.New(items...)}
}

func (p palette) open() (palette, tea.Cmd) {
	p.active = true
	p.input.Reset()
	p.input.Focus()
	p.suggest = p.suggest.Activate("")
	return p, textinput.Blink
}

func (p palette) close() palette {
	p.active = false
	p.input.Blur()
	p.suggest = p.suggest.Deactivate()
	return p
}

// update handles a key while the palette is open. submitted is true when
// enter was pressed; line then holds the entered text.
func (p palette) update(msg tea.KeyMsg) (next palette, cmd tea.Cmd, line string, submitted bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return p.close(), nil, "", false
	case tea.KeyEnter:
		if it, ok := p.suggest.Selected(); ok && p.suggest.Active() && !strings.Contains(p.input.Value(), " ") {
			p.input.SetValue(it.Name)
		}
		line = strings.TrimSpace(p.input.Value())
		return p.close(), nil, line, line != ""
	}

	var (
		consumed bool
		accepted *suggest.Item
	)
	p.suggest, consumed, accepted = p.suggest.HandleKey(msg)
	if accepted != nil {
		p.input.SetValue(accepted.Name + " ")
		p.input.CursorEnd()
	}
	if consumed {
		return p, nil, "", false
	}

	p.input, cmd = p.input.Update(msg)
	value := p.input.Value()
	if strings.Contains(value, " ") {
		p.suggest = p.suggest.Deactivate()
	} else {
		if !p.suggest.Active() {
			p.suggest = p.suggest.Activate(value)
		}
		p.suggest = p.suggest.SetQuery(value)
	}
	return p, cmd, "", false
}

func (p palette) setWidth(w int) palette {
	p.width = w
	p.input.Width = max(w-4, 10)
	return p
}

// View renders the suggestions above the input line.
func (p palette) View() string {
	if !p.active {
		return ""
	}
	line := lipgloss.NewStyle().
		Width(max(p.width, 1)).
		Background(styles.SelectionBackgroundColor).
		Render(p.input.View())
	if s := p.suggest.View(p.width); s != "" {
		return lipgloss.JoinVertical(lipgloss.Left, s, line)
	}
	return line
}

// parseToolLine splits "name {json}" into the tool name and its input.
func parseToolLine(line string) (name, input string) {
	line = strings.TrimSpace(line)
	name, input, _ = strings.Cut(line, " ")
	return name, strings.TrimSpace(input)
}

// toolSummary describes a tool result for the status bar.
func toolSummary(name string, out []byte) string {
	emitted := gjson.GetBytes(out, "emitted").String()
	if emitted == "" {
		return name
	}
	return name + " → " + emitted
}
