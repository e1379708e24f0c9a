package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. It hosts a single editor and quits
// once that editor closes.
type MainModel struct {
	editor Editor
	width  int // Store window dimensions
	height int
}

func NewMainModel(editor Editor) MainModel {
	return MainModel{editor: editor}
}

func (m MainModel) Init() tea.Cmd {
	return m.editor.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor = m.editor.SetWidth(msg.Width)
		return m, nil
	case ClosedMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	return m.editor.View()
}

// Editor exposes the hosted editor, mainly for tests.
func (m MainModel) Editor() Editor {
	return m.editor
}
