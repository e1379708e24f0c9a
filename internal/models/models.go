package models

import "time"

// Field identifies one unit of a Duration.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
	FieldSeconds
)

// Fields lists every field in focus order.
var Fields = [...]Field{FieldHours, FieldMinutes, FieldSeconds}

func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	case FieldSeconds:
		return "seconds"
	}
	return "unknown"
}

// Label is the short unit suffix shown under a field.
func (f Field) Label() string {
	switch f {
	case FieldHours:
		return "h"
	case FieldMinutes:
		return "m"
	case FieldSeconds:
		return "s"
	}
	return "?"
}

// Next returns the following field, wrapping around.
func (f Field) Next() Field {
	return Fields[(int(f)+1)%len(Fields)]
}

// Prev returns the preceding field, wrapping around.
func (f Field) Prev() Field {
	return Fields[(int(f)+len(Fields)-1)%len(Fields)]
}

// Duration is an hours/minutes/seconds triple.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// Get returns the value of field f.
func (d Duration) Get(f Field) int {
	switch f {
	case FieldHours:
		return d.Hours
	case FieldMinutes:
		return d.Minutes
	case FieldSeconds:
		return d.Seconds
	}
	return 0
}

// With returns a copy of d with field f set to v.
func (d Duration) With(f Field, v int) Duration {
	switch f {
	case FieldHours:
		d.Hours = v
	case FieldMinutes:
		d.Minutes = v
	case FieldSeconds:
		d.Seconds = v
	}
	return d
}

// Total converts the triple to a time.Duration.
func (d Duration) Total() time.Duration {
	return time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second
}
