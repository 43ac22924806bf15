// Package sunset computes the evening darkness window for an observer: the
// stretch between sunset on a given date and the following sunrise. The
// sky report uses it to say when its constellations actually apply. The
// astronomy engine itself never does rise/set math; this wraps the sunrise
// package for the service layer.
package sunset

import (
	"time"

	"github.com/keep94/sunrise"

	"github.com/skydash/skydash/pkg/timetricks"
)

// Night is the darkness window following a calendar date.
type Night struct {
	Sunset  time.Time `json:"sunset"`
	Sunrise time.Time `json:"sunrise"`
}

// NightAt returns the darkness window that begins with sunset on the
// calendar day of t at the given coordinates and ends at the next sunrise.
// Only the calendar day of t matters, not its clock.
func NightAt(t time.Time, lat, lng float64) Night {
	t = timetricks.TrimClock(t)

	var s sunrise.Sunrise
	s.Around(lat, lng, t)

	// Around lands near t but not necessarily on its calendar day; walk
	// forward until the sunset falls on the right date. The sunrise
	// package is not very clean with its dates.
	for !timetricks.SameDay(t, s.Sunset()) && s.Sunset().Before(t.AddDate(0, 0, 2)) {
		s.AddDays(1)
	}

	set := s.Sunset()
	s.AddDays(1)
	return Night{Sunset: set, Sunrise: s.Sunrise()}
}
