package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func newEditorKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Handler:  func(m Editor) (Editor, tea.Cmd) { return m.save() },
		Priority: 100,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		Handler:  func(m Editor) (Editor, tea.Cmd) { return m.cancel() },
		Priority: 90,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("up", "+", "=", "k"), key.WithHelp("↑/+", "more")),
		Handler:  func(m Editor) (Editor, tea.Cmd) { return m.stepFocused(1), nil },
		Priority: 80,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("down", "-", "_", "j"), key.WithHelp("↓/-", "less")),
		Handler:  func(m Editor) (Editor, tea.Cmd) { return m.stepFocused(-1), nil },
		Priority: 70,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next field")),
		Handler:  func(m Editor) (Editor, tea.Cmd) { return m.focusNext(), nil },
		Priority: 60,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
		Handler:  func(m Editor) (Editor, tea.Cmd) { return m.focusPrev(), nil },
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("del", "clear")),
		Handler:  func(m Editor) (Editor, tea.Cmd) { return m.clearFocused(), nil },
		Priority: 40,
	})
	return r
}
