package duration

import "github.com/akyairhashvil/durpick/internal/util"

// Counter is a single numeric field bounded by a floor and a ceiling.
// Values saturate at the bounds instead of wrapping.
type Counter struct {
	value int
	min   int
	max   int
}

// NewCounter returns a counter over [min, max] seeded with initial, clamped.
func NewCounter(min, max, initial int) *Counter {
	if min > max {
		min, max = max, min
	}
	return &Counter{value: util.Clamp(initial, min, max), min: min, max: max}
}

// AdjustBy moves the value by delta and returns the clamped result.
func (c *Counter) AdjustBy(delta int) int {
	c.value = util.Clamp(c.value+delta, c.min, c.max)
	return c.value
}

// Set replaces the value outright and returns the clamped result.
func (c *Counter) Set(value int) int {
	c.value = util.Clamp(value, c.min, c.max)
	return c.value
}

func (c *Counter) Value() int { return c.value }
func (c *Counter) Min() int   { return c.min }
func (c *Counter) Max() int   { return c.max }
