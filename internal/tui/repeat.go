package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RepeatState is the phase of a held stepper button.
type RepeatState int

const (
	RepeatIdle RepeatState = iota
	RepeatArmed
	RepeatRepeating
)

func (s RepeatState) String() string {
	switch s {
	case RepeatArmed:
		return "armed"
	case RepeatRepeating:
		return "repeating"
	}
	return "idle"
}

var lastRepeaterID int64

func nextRepeaterID() int {
	return int(atomic.AddInt64(&lastRepeaterID, 1))
}

// repeatDelayMsg ends the hold delay of one session.
type repeatDelayMsg struct {
	id      int
	session int
}

// repeatTickMsg is one interval tick of a repeating session.
type repeatTickMsg struct {
	id      int
	session int
}

// Repeater turns a press into one immediate step, a pause, then a steady
// stream of steps until release. Timers are tea.Tick commands; every
// scheduled message carries the session it belongs to, and Release moves
// the session on, so anything still in flight is dropped when it arrives.
type Repeater struct {
	id       int
	session  int
	state    RepeatState
	amount   int
	delay    time.Duration
	interval time.Duration
}

func NewRepeater(delay, interval time.Duration) *Repeater {
	return &Repeater{
		id:       nextRepeaterID(),
		delay:    delay,
		interval: interval,
	}
}

func (r *Repeater) ID() int            { return r.id }
func (r *Repeater) State() RepeatState { return r.state }

// Press starts a new session, ending any active one first. It returns the
// step to apply now and the command that arms the delay.
func (r *Repeater) Press(amount int) (int, tea.Cmd) {
	r.Release()
	r.amount = amount
	r.state = RepeatArmed
	id, session := r.id, r.session
	return amount, tea.Tick(r.delay, func(time.Time) tea.Msg {
		return repeatDelayMsg{id: id, session: session}
	})
}

// Release cancels the pending delay and the interval. Calling it while idle
// does nothing.
func (r *Repeater) Release() {
	if r.state == RepeatIdle {
		return
	}
	r.session++
	r.state = RepeatIdle
	r.amount = 0
}

// Owns reports whether msg was scheduled by this repeater.
func (r *Repeater) Owns(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case repeatDelayMsg:
		return msg.id == r.id
	case repeatTickMsg:
		return msg.id == r.id
	}
	return false
}

// Update advances the session on its own timer messages. It returns the
// step to apply, zero when there is none, and the next timer command.
func (r *Repeater) Update(msg tea.Msg) (int, tea.Cmd) {
	switch msg := msg.(type) {
	case repeatDelayMsg:
		if msg.id != r.id || msg.session != r.session || r.state != RepeatArmed {
			return 0, nil
		}
		r.state = RepeatRepeating
		return 0, r.tick()
	case repeatTickMsg:
		if msg.id != r.id || msg.session != r.session || r.state != RepeatRepeating {
			return 0, nil
		}
		return r.amount, r.tick()
	}
	return 0, nil
}

func (r *Repeater) tick() tea.Cmd {
	id, session := r.id, r.session
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return repeatTickMsg{id: id, session: session}
	})
}
