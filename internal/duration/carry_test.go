package duration

import (
	"testing"

	"github.com/akyairhashvil/durpick/internal/config"
	"github.com/akyairhashvil/durpick/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input models.Duration
		want  models.Duration
	}{
		{"in range", models.Duration{Hours: 1, Minutes: 2, Seconds: 3}, models.Duration{Hours: 1, Minutes: 2, Seconds: 3}},
		{"seconds overflow", models.Duration{Minutes: 4, Seconds: 65}, models.Duration{Minutes: 5, Seconds: 5}},
		{"seconds at 60", models.Duration{Seconds: 60}, models.Duration{Minutes: 1}},
		{"minutes overflow", models.Duration{Minutes: 61}, models.Duration{Hours: 1, Minutes: 1}},
		{"seconds underflow", models.Duration{Minutes: 3, Seconds: -1}, models.Duration{Minutes: 2, Seconds: 59}},
		{"seconds underflow floors minutes", models.Duration{Seconds: -1}, models.Duration{Seconds: 59}},
		{"seconds underflow does not cascade", models.Duration{Hours: 1, Seconds: -1}, models.Duration{Hours: 1, Seconds: 59}},
		{"minutes underflow", models.Duration{Hours: 2, Minutes: -1, Seconds: 7}, models.Duration{Hours: 1, Minutes: 59, Seconds: 7}},
		{"minutes underflow floors hours", models.Duration{Minutes: -1}, models.Duration{Minutes: 59}},
		{"seconds carry cascades into hours", models.Duration{Minutes: 59, Seconds: 60}, models.Duration{Hours: 1}},
		{"two digit seconds", models.Duration{Seconds: 99}, models.Duration{Minutes: 1, Seconds: 39}},
		{"hours saturate", models.Duration{Hours: 99, Minutes: 60}, models.Duration{Hours: 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := models.Duration{
			Hours:   rapid.IntRange(0, config.MaxHours).Draw(t, "hours"),
			Minutes: rapid.IntRange(config.WorkingMin, config.WorkingMax).Draw(t, "minutes"),
			Seconds: rapid.IntRange(config.WorkingMin, config.WorkingMax).Draw(t, "seconds"),
		}
		n := Normalize(d)
		require.True(t, n.Hours >= 0 && n.Hours <= config.MaxHours, "hours %d", n.Hours)
		require.True(t, n.Minutes >= 0 && n.Minutes <= config.MaxMinutes, "minutes %d", n.Minutes)
		require.True(t, n.Seconds >= 0 && n.Seconds <= config.MaxSeconds, "seconds %d", n.Seconds)
		require.Equal(t, n, Normalize(n), "Normalize must be idempotent")
	})
}
