package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Editor) (Editor, tea.Cmd)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
}

// HandlerRegistry dispatches key presses to the highest priority matching
// binding. It doubles as the help.KeyMap for the footer.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Editor, msg tea.KeyMsg) (Editor, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Binding.Enabled() && key.Matches(msg, b.Binding) {
			next, cmd := b.Handler(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// ShortHelp lists bindings that carry help text, highest priority first.
func (r *HandlerRegistry) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		if b.Binding.Help().Key == "" {
			continue
		}
		out = append(out, b.Binding)
	}
	return out
}

func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	return [][]key.Binding{r.ShortHelp()}
}
