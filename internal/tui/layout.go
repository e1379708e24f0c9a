package tui

import (
	"github.com/akyairhashvil/durpick/internal/config"
	"github.com/akyairhashvil/durpick/internal/models"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitButton
	hitValue
)

type hit struct {
	kind  hitKind
	field models.Field
	step  stepper
}

// editorLayout maps screen cells to the controls View draws. It must agree
// with View row for row.
type editorLayout struct {
	top  int
	left int
}

func (m Editor) layout() editorLayout {
	return editorLayout{
		top:  config.LayoutTop + config.TitleRows,
		left: config.LayoutLeft,
	}
}

func (l editorLayout) incRow() int   { return l.top }
func (l editorLayout) valueRow() int { return l.top + 1 }
func (l editorLayout) decRow() int   { return l.top + 2 }
func (l editorLayout) labelRow() int { return l.top + 3 }

func (l editorLayout) cellX(f models.Field) int {
	return l.left + int(f)*(config.CellWidth+config.SeparatorWidth)
}

func (l editorLayout) hitTest(x, y int) hit {
	for _, f := range models.Fields {
		x0 := l.cellX(f)
		switch y {
		case l.incRow():
			if x >= x0 && x < x0+config.ButtonWidth {
				return hit{kind: hitButton, field: f, step: stepUp}
			}
		case l.decRow():
			if x >= x0 && x < x0+config.ButtonWidth {
				return hit{kind: hitButton, field: f, step: stepDown}
			}
		case l.valueRow():
			if x >= x0 && x < x0+config.CellWidth {
				return hit{kind: hitValue, field: f}
			}
		}
	}
	return hit{}
}
