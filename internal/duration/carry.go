package duration

import (
	"github.com/akyairhashvil/durpick/internal/config"
	"github.com/akyairhashvil/durpick/internal/models"
	"github.com/akyairhashvil/durpick/internal/util"
)

// Normalize carries seconds and minutes that left [0,59] into the next unit
// and clamps hours to [0,99]. Seconds are settled first because their
// overflow can push minutes past 59.
//
// A negative unit borrows exactly one from the unit above, which is floored
// at zero rather than borrowing further: 1:00:-1 becomes 1:00:59.
func Normalize(d models.Duration) models.Duration {
	switch {
	case d.Seconds > config.MaxSeconds:
		d.Minutes += d.Seconds / 60
		d.Seconds %= 60
	case d.Seconds < 0:
		d.Minutes--
		if d.Minutes < 0 {
			d.Minutes = 0
		}
		d.Seconds = config.MaxSeconds
	}

	switch {
	case d.Minutes > config.MaxMinutes:
		d.Hours += d.Minutes / 60
		d.Minutes %= 60
	case d.Minutes < 0:
		d.Hours--
		if d.Hours < 0 {
			d.Hours = 0
		}
		d.Minutes = config.MaxMinutes
	}

	d.Hours = util.Clamp(d.Hours, 0, config.MaxHours)
	return d
}
