package models

import (
	"testing"
	"time"
)

func TestFieldOrderAndLabels(t *testing.T) {
	if FieldHours != 0 || FieldMinutes != 1 || FieldSeconds != 2 {
		t.Fatalf("unexpected field constants")
	}
	if FieldMinutes.String() != "minutes" || FieldSeconds.Label() != "s" {
		t.Fatalf("unexpected field naming")
	}
	if Field(7).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range field")
	}
}

func TestFieldNextPrevWrap(t *testing.T) {
	if FieldHours.Next() != FieldMinutes || FieldSeconds.Next() != FieldHours {
		t.Fatalf("Next did not wrap")
	}
	if FieldHours.Prev() != FieldSeconds || FieldMinutes.Prev() != FieldHours {
		t.Fatalf("Prev did not wrap")
	}
}

func TestDurationGetWith(t *testing.T) {
	d := Duration{Hours: 1, Minutes: 2, Seconds: 3}
	for _, f := range Fields {
		if got := d.With(f, 9).Get(f); got != 9 {
			t.Fatalf("With/Get(%s) = %d", f, got)
		}
	}
	if d.Hours != 1 {
		t.Fatalf("With must not modify the receiver")
	}
}

func TestDurationTotal(t *testing.T) {
	d := Duration{Hours: 1, Minutes: 2, Seconds: 3}
	want := time.Hour + 2*time.Minute + 3*time.Second
	if got := d.Total(); got != want {
		t.Fatalf("Total() = %v, want %v", got, want)
	}
	var zero Duration
	if zero.Total() != 0 {
		t.Fatalf("zero Duration should total 0")
	}
}
