// Package duration holds the arithmetic behind the duration editor: the
// string codec, bounded counters and carry propagation between units.
package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/durpick/internal/config"
	"github.com/akyairhashvil/durpick/internal/models"
	"github.com/akyairhashvil/durpick/internal/util"
)

// Parse reads "H:MM:SS" or "MM:SS". A segment that is not an integer counts
// as 0 and every field is clamped into its normalized range, so malformed
// input never fails. Input with any other number of segments is zero.
func Parse(input string) models.Duration {
	parts := strings.Split(input, ":")
	var h, m, s int
	switch len(parts) {
	case 3:
		h, m, s = segment(parts[0]), segment(parts[1]), segment(parts[2])
	case 2:
		m, s = segment(parts[0]), segment(parts[1])
	}
	return models.Duration{
		Hours:   util.Clamp(h, 0, config.MaxHours),
		Minutes: util.Clamp(m, 0, config.MaxMinutes),
		Seconds: util.Clamp(s, 0, config.MaxSeconds),
	}
}

func segment(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Format renders d as "H:MM:SS", or "M:SS" when there are no hours.
// "0:05:09" parses to {0,5,9} which formats back as "5:09".
func Format(d models.Duration) string {
	if d.Hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
	}
	return fmt.Sprintf("%d:%02d", d.Minutes, d.Seconds)
}

// Render formats d in one of the config output formats. Unknown formats
// fall back to the clock form.
func Render(d models.Duration, format string) string {
	switch format {
	case config.FormatSeconds:
		return strconv.Itoa(int(d.Total() / time.Second))
	case config.FormatGo:
		return d.Total().String()
	}
	return Format(d)
}

// FromTotal splits t into a normalized triple. Sub-second precision is
// dropped and anything beyond 99:59:59 saturates.
func FromTotal(t time.Duration) models.Duration {
	if t <= 0 {
		return models.Duration{}
	}
	secs := int64(t / time.Second)
	maxSecs := int64(config.MaxHours*3600 + config.MaxMinutes*60 + config.MaxSeconds)
	if secs > maxSecs {
		secs = maxSecs
	}
	return models.Duration{
		Hours:   int(secs / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}
}
