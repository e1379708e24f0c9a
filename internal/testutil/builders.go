package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/durpick/internal/models"
)

// DurationBuilder provides fluent API for creating test durations.
type DurationBuilder struct {
	d models.Duration
}

func NewDuration() *DurationBuilder {
	return &DurationBuilder{}
}

func (b *DurationBuilder) WithHours(h int) *DurationBuilder {
	b.d.Hours = h
	return b
}

func (b *DurationBuilder) WithMinutes(m int) *DurationBuilder {
	b.d.Minutes = m
	return b
}

func (b *DurationBuilder) WithSeconds(s int) *DurationBuilder {
	b.d.Seconds = s
	return b
}

func (b *DurationBuilder) Build() models.Duration {
	return b.d
}

// Typed returns one rune key message per character of s, as a terminal
// delivers them when typed one at a time.
func Typed(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}
