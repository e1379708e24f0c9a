package util

import "cmp"

// Clamp constrains value to [lo, hi]. lo must not exceed hi.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return max(lo, min(value, hi))
}
