package tui

import (
	"strconv"

	"github.com/akyairhashvil/durpick/internal/config"
)

// EntryState tracks where a field is in its typing cycle.
type EntryState int

const (
	EntryUnfocused EntryState = iota
	EntryAwaitingFirstDigit
	EntryEditing
)

// DigitBuffer remembers the last two digits typed into a field since it
// gained focus. The first digit after focus replaces the buffer; later
// digits slide through it, so typing 1, 2, 3 yields 23.
type DigitBuffer struct {
	state  EntryState
	digits string
}

func (b *DigitBuffer) State() EntryState { return b.state }

// Buffer returns the pending digits. It is never rendered.
func (b *DigitBuffer) Buffer() string { return b.digits }

// Focus arms the buffer so the next digit starts a fresh entry.
func (b *DigitBuffer) Focus() {
	b.state = EntryAwaitingFirstDigit
}

func (b *DigitBuffer) Blur() {
	b.state = EntryUnfocused
	b.digits = ""
}

// InsertDigit accepts r if it is an ASCII digit and returns the value the
// field should be set to. Anything else leaves the buffer untouched.
func (b *DigitBuffer) InsertDigit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	if b.state == EntryAwaitingFirstDigit {
		b.digits = ""
	}
	b.state = EntryEditing
	b.digits += string(r)
	if len(b.digits) > config.DigitBufferSize {
		b.digits = b.digits[len(b.digits)-config.DigitBufferSize:]
	}
	value, err := strconv.Atoi(b.digits)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Delete empties the buffer. The field resets to zero rather than losing
// only its last digit.
func (b *DigitBuffer) Delete() int {
	b.digits = ""
	return 0
}
