package tui

import (
	"time"

	"github.com/akyairhashvil/durpick/internal/config"
	"github.com/akyairhashvil/durpick/internal/duration"
	"github.com/akyairhashvil/durpick/internal/models"
	"github.com/akyairhashvil/durpick/internal/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// ClosedMsg is emitted once when an editing session ends.
type ClosedMsg struct {
	Saved bool
	Value string
}

// focusMsg moves focus to the initial field once the editor is on screen.
type focusMsg struct {
	id int
}

type stepper int

const (
	stepDown stepper = iota
	stepUp
)

func (s stepper) amount() int {
	if s == stepUp {
		return 1
	}
	return -1
}

func (s stepper) label() string {
	if s == stepUp {
		return config.IncrementLabel
	}
	return config.DecrementLabel
}

type buttonRef struct {
	field models.Field
	step  stepper
}

// editSession is shared by every copy of an Editor value.
type editSession struct {
	held   *buttonRef
	saved  bool
	closed bool
}

// EditorOptions configures NewEditor. Zero values fall back to defaults.
type EditorOptions struct {
	Initial  string
	Title    string
	Sink     Sink
	Theme    Theme
	Settings config.Settings
}

// Editor edits an hours/minutes/seconds value with stepper buttons,
// press-and-hold repeat and direct digit entry.
type Editor struct {
	id         int
	counters   [len(models.Fields)]*duration.Counter
	buffers    [len(models.Fields)]*DigitBuffer
	repeats    [len(models.Fields)][2]*Repeater
	focused    models.Field
	hasFocus   bool
	session    *editSession
	sink       Sink
	keys       *HandlerRegistry
	help       help.Model
	theme      Theme
	title      string
	focusDelay time.Duration
}

var lastEditorID int

func NewEditor(opts EditorOptions) Editor {
	settings := opts.Settings
	if settings.Repeat.Delay <= 0 || settings.Repeat.Interval <= 0 {
		settings.Repeat = config.DefaultSettings().Repeat
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = Themes[config.DefaultTheme]
	}
	sink := opts.Sink
	if sink == nil {
		sink = SinkFuncs{}
	}
	title := opts.Title
	if title == "" {
		title = "Set duration"
	}

	lastEditorID++
	m := Editor{
		id:         lastEditorID,
		session:    &editSession{},
		sink:       sink,
		keys:       newEditorKeys(),
		help:       help.New(),
		theme:      theme,
		title:      title,
		focusDelay: settings.FocusDelay,
	}

	initial := duration.Parse(opts.Initial)
	m.counters[models.FieldHours] = duration.NewCounter(0, config.MaxHours, initial.Hours)
	m.counters[models.FieldMinutes] = duration.NewCounter(config.WorkingMin, config.WorkingMax, initial.Minutes)
	m.counters[models.FieldSeconds] = duration.NewCounter(config.WorkingMin, config.WorkingMax, initial.Seconds)
	for _, f := range models.Fields {
		m.buffers[f] = &DigitBuffer{}
		m.repeats[f][stepDown] = NewRepeater(settings.Repeat.Delay, settings.Repeat.Interval)
		m.repeats[f][stepUp] = NewRepeater(settings.Repeat.Delay, settings.Repeat.Interval)
	}
	util.Debugf("editor %d opened at %s", m.id, duration.Format(initial))
	return m
}

// Init focuses the minutes field after a short delay so the opening
// transition cannot take the focus away again.
func (m Editor) Init() tea.Cmd {
	id := m.id
	return tea.Tick(m.focusDelay, func(time.Time) tea.Msg { return focusMsg{id: id} })
}

func (m Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	if m.session.closed {
		return m, nil
	}
	switch msg := msg.(type) {
	case focusMsg:
		if msg.id == m.id && !m.hasFocus {
			m = m.focus(models.FieldMinutes)
		}
		return m, nil
	case repeatDelayMsg, repeatTickMsg:
		return m.handleRepeat(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// Value returns the current triple.
func (m Editor) Value() models.Duration {
	var d models.Duration
	for _, f := range models.Fields {
		d = d.With(f, m.counters[f].Value())
	}
	return d
}

// Focused returns the focused field and whether any field has focus.
func (m Editor) Focused() (models.Field, bool) {
	return m.focused, m.hasFocus
}

func (m Editor) Closed() bool { return m.session.closed }

// SetWidth bounds the help footer.
func (m Editor) SetWidth(width int) Editor {
	m.help.Width = width
	return m
}

// Teardown stops every repeat session and drops typed digits. Closing the
// editor calls it; hosts call it when discarding an editor that is still open.
func (m Editor) Teardown() {
	m.releaseAll()
	for _, b := range m.buffers {
		b.Blur()
	}
}

func (m Editor) adjust(f models.Field, delta int) {
	m.counters[f].AdjustBy(delta)
	m.normalize()
}

func (m Editor) set(f models.Field, value int) {
	m.counters[f].Set(value)
	m.normalize()
}

func (m Editor) normalize() {
	n := duration.Normalize(m.Value())
	for _, f := range models.Fields {
		m.counters[f].Set(n.Get(f))
	}
}

func (m Editor) focus(f models.Field) Editor {
	if m.hasFocus && m.focused == f {
		return m
	}
	if m.hasFocus {
		m.buffers[m.focused].Blur()
	}
	m.focused, m.hasFocus = f, true
	m.buffers[f].Focus()
	return m
}

func (m Editor) press(b buttonRef) (Editor, tea.Cmd) {
	m.releaseAll()
	step, cmd := m.repeats[b.field][b.step].Press(b.step.amount())
	m.adjust(b.field, step)
	m.session.held = &b
	return m, cmd
}

func (m Editor) releaseAll() {
	for f := range m.repeats {
		for _, r := range m.repeats[f] {
			r.Release()
		}
	}
	m.session.held = nil
}

func (m Editor) handleRepeat(msg tea.Msg) (Editor, tea.Cmd) {
	for _, f := range models.Fields {
		for _, r := range m.repeats[f] {
			if !r.Owns(msg) {
				continue
			}
			step, cmd := r.Update(msg)
			if step != 0 {
				m.adjust(f, step)
			}
			return m, cmd
		}
	}
	return m, nil
}

func (m Editor) handleKey(msg tea.KeyMsg) (Editor, tea.Cmd) {
	if next, cmd, handled := m.keys.Handle(m, msg); handled {
		return next, cmd
	}
	if msg.Type == tea.KeyRunes && m.hasFocus {
		for _, r := range msg.Runes {
			if value, ok := m.buffers[m.focused].InsertDigit(r); ok {
				m.set(m.focused, value)
			}
		}
	}
	return m, nil
}

func (m Editor) handleMouse(msg tea.MouseMsg) (Editor, tea.Cmd) {
	hit := m.layout().hitTest(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			switch hit.kind {
			case hitButton:
				return m.press(buttonRef{field: hit.field, step: hit.step})
			case hitValue:
				return m.focus(hit.field), nil
			}
		case tea.MouseButtonWheelUp:
			if hit.kind != hitNone {
				m.adjust(hit.field, 1)
			}
		case tea.MouseButtonWheelDown:
			if hit.kind != hitNone {
				m.adjust(hit.field, -1)
			}
		}
	case tea.MouseActionRelease:
		m.releaseAll()
	case tea.MouseActionMotion:
		held := m.session.held
		if held != nil && (hit.kind != hitButton || hit.field != held.field || hit.step != held.step) {
			m.releaseAll()
		}
	}
	return m, nil
}

func (m Editor) stepFocused(delta int) Editor {
	if m.hasFocus {
		m.adjust(m.focused, delta)
	}
	return m
}

func (m Editor) clearFocused() Editor {
	if m.hasFocus {
		m.set(m.focused, m.buffers[m.focused].Delete())
	}
	return m
}

func (m Editor) focusNext() Editor {
	if !m.hasFocus {
		return m.focus(models.FieldMinutes)
	}
	return m.focus(m.focused.Next())
}

func (m Editor) focusPrev() Editor {
	if !m.hasFocus {
		return m.focus(models.FieldMinutes)
	}
	return m.focus(m.focused.Prev())
}

func (m Editor) save() (Editor, tea.Cmd) {
	if m.session.closed {
		return m, nil
	}
	value := duration.Format(m.Value())
	m.session.saved = true
	m.sink.Save(value)
	util.Debugf("editor %d saved %s", m.id, value)
	return m.close(true, value)
}

func (m Editor) cancel() (Editor, tea.Cmd) {
	util.Debugf("editor %d cancelled", m.id)
	return m.close(false, "")
}

func (m Editor) close(saved bool, value string) (Editor, tea.Cmd) {
	m.Teardown()
	if m.session.closed {
		return m, nil
	}
	m.session.closed = true
	m.sink.Close()
	return m, func() tea.Msg { return ClosedMsg{Saved: saved, Value: value} }
}
