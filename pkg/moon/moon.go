// Package moon computes the Moon's phase as a pure function of time.
//
// The model is the classic mean-cycle approximation: days elapsed since a
// reference new moon, reduced modulo the mean synodic month. It is accurate
// to within a day or so, which is all the dashboard needs; it is not an
// ephemeris.
package moon

import (
	"math"
	"time"

	"github.com/skydash/skydash/pkg/astrotime"
)

const (
	// SynodicMonth is the mean length of the lunar phase cycle in days.
	SynodicMonth = 29.53059

	// referenceNewMoon is the Julian Day of a known new moon near
	// 2000-01-06.
	referenceNewMoon = 2451550.1
)

// Phase describes the Moon at one instant.
type Phase struct {
	// Fraction is the position in the phase cycle, in [0,1).
	// 0 is new, 0.5 is full, and the cycle wraps back to new at 1.
	Fraction float64

	// Illumination is the lit fraction of the disc, in [0,1].
	// It is always exactly 0.5*(1-cos(2*pi*Fraction)).
	Illumination float64

	Name  string
	Emoji string
}

// The eight named phases, in cycle order starting from new.
const (
	NewMoon        = "New Moon"
	WaxingCrescent = "Waxing Crescent"
	FirstQuarter   = "First Quarter"
	WaxingGibbous  = "Waxing Gibbous"
	FullMoon       = "Full Moon"
	WaningGibbous  = "Waning Gibbous"
	LastQuarter    = "Last Quarter"
	WaningCrescent = "Waning Crescent"
)

// phaseBands maps cycle fractions to names and glyphs. Each band begins at
// From and runs to the next band's From; the final waning-crescent band
// ends at 0.975, past which the cycle reads as new again.
var phaseBands = []struct {
	From  float64
	Name  string
	Emoji string
}{
	{0.000, NewMoon, "🌑"},
	{0.025, WaxingCrescent, "🌒"},
	{0.225, FirstQuarter, "🌓"},
	{0.275, WaxingGibbous, "🌔"},
	{0.475, FullMoon, "🌕"},
	{0.525, WaningGibbous, "🌖"},
	{0.725, LastQuarter, "🌗"},
	{0.775, WaningCrescent, "🌘"},
	{0.975, NewMoon, "🌑"},
}

// PhaseAt returns the Moon's phase at the given instant.
func PhaseAt(t time.Time) Phase {
	jd := astrotime.JulianDay(t)
	return PhaseFromAge(jd - referenceNewMoon)
}

// PhaseFromAge returns the phase for an age in days since any new moon.
// This is the simple day-offset form used for UI display; PhaseAt reduces
// to it, so the two can never disagree on names or glyphs.
func PhaseFromAge(days float64) Phase {
	age := math.Mod(days, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	fraction := age / SynodicMonth
	if fraction >= 1 { // guard the float edge where age == SynodicMonth
		fraction = 0
	}

	name, emoji := classify(fraction)
	return Phase{
		Fraction:     fraction,
		Illumination: Illumination(fraction),
		Name:         name,
		Emoji:        emoji,
	}
}

// Illumination is the half-cosine lit-disc approximation: exactly 0 at new,
// exactly 1 at full.
func Illumination(fraction float64) float64 {
	return 0.5 * (1 - math.Cos(2*math.Pi*fraction))
}

func classify(fraction float64) (name, emoji string) {
	for i := len(phaseBands) - 1; i >= 0; i-- {
		if fraction >= phaseBands[i].From {
			return phaseBands[i].Name, phaseBands[i].Emoji
		}
	}
	// Unreachable for fraction in [0,1); keep the zero band as a backstop.
	return phaseBands[0].Name, phaseBands[0].Emoji
}
