package planner

import (
	"math"
	"time"
)

// StartOfDay returns midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalendarDays returns the number of calendar days from `from` to `to`.
// Negative when `from` is later. DST shifts are absorbed by rounding.
func CalendarDays(from, to time.Time) int {
	diff := StartOfDay(to).Sub(StartOfDay(from))
	return int(math.Round(diff.Hours() / 24))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return CalendarDays(a, b) == 0
}
