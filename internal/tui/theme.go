package tui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Theme styles never add padding, margins or borders: the mouse hit map
// assumes every cell renders at its plain-text width.
type Theme struct {
	Name         string
	Title        lipgloss.Style
	Value        lipgloss.Style
	FocusedValue lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	Separator    lipgloss.Style
	Label        lipgloss.Style
	Dim          lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Value:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedValue: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true),
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		ActiveButton: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:         "Dracula",
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Value:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		FocusedValue: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		ActiveButton: lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("215")).Bold(true),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")), // Comment
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeByName looks a theme up by its key in Themes.
func ThemeByName(name string) (Theme, error) {
	t, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownTheme, name, ThemeNames())
	}
	return t, nil
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
