// Package timetricks has small calendar-day helpers.
package timetricks

import (
	"time"
)

const dayFormat = "20060102"

// SameDay reports whether two times fall on the same calendar day.
func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// TrimClock drops the wall-clock component, leaving midnight of t's day.
func TrimClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return t.Add(-1 *
		(time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second))
}
