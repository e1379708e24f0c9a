package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRepeaterPressStepsImmediately(t *testing.T) {
	r := NewRepeater(time.Hour, time.Hour)
	step, cmd := r.Press(1)
	if step != 1 {
		t.Fatalf("expected immediate step 1, got %d", step)
	}
	if cmd == nil {
		t.Fatalf("expected delay command")
	}
	if r.State() != RepeatArmed {
		t.Fatalf("expected armed state, got %v", r.State())
	}
}

func TestRepeaterDelayThenInterval(t *testing.T) {
	r := NewRepeater(time.Millisecond, time.Millisecond)
	_, cmd := r.Press(-1)

	msg := cmd()
	if _, ok := msg.(repeatDelayMsg); !ok {
		t.Fatalf("expected repeatDelayMsg, got %T", msg)
	}
	step, next := r.Update(msg)
	if step != 0 {
		t.Fatalf("delay end must not step on its own, got %d", step)
	}
	if next == nil || r.State() != RepeatRepeating {
		t.Fatalf("expected repeating with a scheduled tick, state %v", r.State())
	}

	for i := 0; i < 3; i++ {
		tick := next()
		if _, ok := tick.(repeatTickMsg); !ok {
			t.Fatalf("expected repeatTickMsg, got %T", tick)
		}
		step, next = r.Update(tick)
		if step != -1 {
			t.Fatalf("tick %d: expected step -1, got %d", i, step)
		}
		if next == nil {
			t.Fatalf("tick %d: expected the next tick to be scheduled", i)
		}
	}
}

func TestRepeaterReleaseBeforeDelay(t *testing.T) {
	r := NewRepeater(time.Millisecond, time.Millisecond)
	_, cmd := r.Press(1)
	r.Release()

	step, next := r.Update(cmd())
	if step != 0 || next != nil {
		t.Fatalf("expected no repeats after early release, got step %d cmd %v", step, next != nil)
	}
	if r.State() != RepeatIdle {
		t.Fatalf("expected idle, got %v", r.State())
	}
}

func TestRepeaterReleaseStopsInFlightTick(t *testing.T) {
	r := NewRepeater(time.Hour, time.Hour)
	r.Press(1)
	_, tickCmd := r.Update(repeatDelayMsg{id: r.ID(), session: r.session})
	if tickCmd == nil {
		t.Fatalf("expected tick to be scheduled")
	}
	inFlight := repeatTickMsg{id: r.ID(), session: r.session}

	r.Release()
	if step, next := r.Update(inFlight); step != 0 || next != nil {
		t.Fatalf("expected in-flight tick to be dropped, got step %d", step)
	}
}

func TestRepeaterReleaseIsIdempotent(t *testing.T) {
	r := NewRepeater(time.Hour, time.Hour)
	r.Release()
	r.Release()
	if r.State() != RepeatIdle || r.session != 0 {
		t.Fatalf("release without a press must be a no-op, state %v session %d", r.State(), r.session)
	}

	r.Press(1)
	r.Release()
	session := r.session
	r.Release()
	if r.session != session {
		t.Fatalf("second release changed the session")
	}
}

func TestRepeaterNewPressSupersedesOldSession(t *testing.T) {
	r := NewRepeater(time.Hour, time.Hour)
	r.Press(1)
	stale := repeatDelayMsg{id: r.ID(), session: r.session}

	r.Press(-1)
	if step, next := r.Update(stale); step != 0 || next != nil {
		t.Fatalf("expected stale delay to be ignored")
	}
	if step, next := r.Update(repeatDelayMsg{id: r.ID(), session: r.session}); step != 0 || next == nil {
		t.Fatalf("expected current delay to start repeating")
	}
	if step, _ := r.Update(repeatTickMsg{id: r.ID(), session: r.session}); step != -1 {
		t.Fatalf("expected the new amount, got %d", step)
	}
}

func TestRepeaterIgnoresOtherRepeaters(t *testing.T) {
	a := NewRepeater(time.Hour, time.Hour)
	b := NewRepeater(time.Hour, time.Hour)
	a.Press(1)
	b.Press(1)

	msg := repeatDelayMsg{id: b.ID(), session: b.session}
	if a.Owns(msg) || !b.Owns(msg) {
		t.Fatalf("ownership mismatch")
	}
	if step, next := a.Update(msg); step != 0 || next != nil {
		t.Fatalf("expected foreign message to be ignored")
	}
	if a.Owns(tea.KeyMsg{}) {
		t.Fatalf("key messages are never owned")
	}
}
