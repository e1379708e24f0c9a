package config

import "time"

// Repeat timings for held stepper buttons.
const (
	RepeatDelay    = 500 * time.Millisecond
	RepeatInterval = 80 * time.Millisecond
	FocusDelay     = 100 * time.Millisecond
)

// Field bounds of a normalized duration.
const (
	MaxHours   = 99
	MaxMinutes = 59
	MaxSeconds = 59
)

// Working range of the minutes and seconds counters while editing. One step
// below zero and anything a two-digit entry can produce are accepted so the
// carry pass can borrow or overflow into the neighbouring unit.
const (
	WorkingMin = -1
	WorkingMax = 99
)

// DigitBufferSize is how many typed digits a field remembers.
const DigitBufferSize = 2

// Output formats for a saved duration.
const (
	FormatClock   = "clock"
	FormatSeconds = "seconds"
	FormatGo      = "go"
)

// Application settings.
const (
	AppName        = "durpick"
	ConfigFileName = "config.yaml"
	DefaultTheme   = "default"
	DebugEnv       = "DURPICK_DEBUG"
)
