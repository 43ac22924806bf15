// Package astrotime converts calendar instants into the astronomical time
// scales the rest of skydash computes with: Julian Day and Local Sidereal
// Time. Everything here is a pure function of the input instant.
package astrotime

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 UTC).
const J2000 = 2451545.0

// JulianDay converts a time to a Julian Day using the standard Meeus
// algorithm. The astronomical day begins at noon, hence the -12 hour
// offset in the fractional part.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	// Treat January and February as months 13 and 14 of the prior year.
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := float64(day) +
		math.Floor((153.0*float64(m)+2.0)/5.0) +
		365.0*float64(y) +
		math.Floor(float64(y)/4.0) -
		math.Floor(float64(y)/100.0) +
		math.Floor(float64(y)/400.0) -
		32045.0

	hours := float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0 +
		float64(t.Nanosecond())/3600e9

	return jdn + (hours-12.0)/24.0
}

// LocalSiderealTime returns the observer's sidereal time in degrees,
// always in [0, 360). Greenwich sidereal time comes from the usual cubic
// polynomial in Julian centuries since J2000.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	jd := JulianDay(t)
	T := (jd - J2000) / 36525.0

	gst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return NormalizeDegrees(gst + lonDeg)
}

// NormalizeDegrees reduces an angle into [0, 360) with a floored modulo.
// math.Mod keeps the sign of the dividend, so negative angles need the
// extra wrap.
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// DateNumber is the calendar-date hash that seeds every deterministic
// "variety" choice in skydash (circumpolar picks, planet perturbations,
// star field). Two calls on the same calendar date always agree.
func DateNumber(t time.Time) int {
	return t.Day() + int(t.Month())*100 + t.Year()*10000
}
