package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/durpick/internal/config"
	"github.com/akyairhashvil/durpick/internal/models"
	"github.com/charmbracelet/x/ansi"
)

func (m Editor) View() string {
	if m.session.closed {
		return ""
	}
	indent := strings.Repeat(" ", config.LayoutLeft)
	lines := make([]string, 0, config.LayoutTop+12)
	for i := 0; i < config.LayoutTop; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, indent+m.theme.Title.Render(m.title), "")
	lines = append(lines,
		m.renderButtonRow(stepUp),
		m.renderValueRow(),
		m.renderButtonRow(stepDown),
		m.renderLabelRow(),
		"",
		indent+m.theme.Dim.Render(FormatDuration(m.Value())),
		"",
		indent+m.help.View(m.keys),
	)
	return strings.Join(lines, "\n")
}

func (m Editor) renderButtonRow(step stepper) string {
	held := m.session.held
	return renderRow(strings.Repeat(" ", config.SeparatorWidth), func(f models.Field) string {
		if held != nil && held.field == f && held.step == step {
			return m.theme.ActiveButton.Render(step.label())
		}
		return m.theme.Button.Render(step.label())
	})
}

func (m Editor) renderValueRow() string {
	d := m.Value()
	return renderRow(m.theme.Separator.Render(config.FieldSeparator), func(f models.Field) string {
		text := fmt.Sprintf("%02d", d.Get(f))
		if m.hasFocus && m.focused == f {
			return " " + m.theme.FocusedValue.Render(text)
		}
		return " " + m.theme.Value.Render(text)
	})
}

func (m Editor) renderLabelRow() string {
	return renderRow(strings.Repeat(" ", config.SeparatorWidth), func(f models.Field) string {
		return "  " + m.theme.Label.Render(f.Label())
	})
}

func renderRow(sep string, cell func(models.Field) string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", config.LayoutLeft))
	for i, f := range models.Fields {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(padCell(cell(f), config.CellWidth))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
