package skyview

import (
	"fmt"
	"math"
)

// Moon disc geometry. The graphic lives in a fixed 100x100 space.
const (
	moonSize   = 100
	moonCenter = 50.0
	moonRadius = 40.0

	// LitFill is the default fill of the illuminated region. Callers that
	// want a tinted moon substitute this token in the rendered markup.
	LitFill = "#ffffff"

	darkFill = "#1a1a2e"
)

// MoonGraphic renders the moon disc for a phase-cycle fraction. Exact new
// and full phases are solid discs, the quarters are exact half discs, and
// everything between gets a terminator built from an elliptical arc whose
// horizontal curvature is |sin(2*pi*fraction)|*radius, with the arc
// direction flipped between the waxing and waning halves.
func MoonGraphic(fraction float64) *Document {
	f := wrapFraction(fraction)

	d := NewDocument(moonSize, moonSize)
	d.Circle(moonCenter, moonCenter, moonRadius, darkFill)

	top := moonCenter - moonRadius
	bottom := moonCenter + moonRadius

	switch {
	case f < 0.025 || f >= 0.975:
		// New: the dark disc alone.

	case f >= 0.475 && f < 0.525:
		// Full: light disc over the dark one.
		d.Circle(moonCenter, moonCenter, moonRadius, LitFill)

	case f >= 0.225 && f < 0.275:
		// First quarter: exact right half.
		d.Path(fmt.Sprintf("M %s,%s A %s,%s 0 0 1 %s,%s Z",
			num(moonCenter), num(top),
			num(moonRadius), num(moonRadius),
			num(moonCenter), num(bottom)), LitFill)

	case f >= 0.725 && f < 0.775:
		// Last quarter: exact left half.
		d.Path(fmt.Sprintf("M %s,%s A %s,%s 0 0 0 %s,%s Z",
			num(moonCenter), num(top),
			num(moonRadius), num(moonRadius),
			num(moonCenter), num(bottom)), LitFill)

	default:
		d.Path(terminatorPath(f), LitFill)
	}

	return d
}

// terminatorPath builds the crescent/gibbous silhouette: one circular limb
// arc down the lit side and an elliptical terminator arc back up. rx is
// the terminator's horizontal semi-axis; its sweep flag decides whether
// the shape reads as a crescent or a gibbous bulge.
func terminatorPath(f float64) string {
	rx := math.Abs(math.Sin(2*math.Pi*f)) * moonRadius
	top := moonCenter - moonRadius
	bottom := moonCenter + moonRadius

	waxing := f < 0.5

	// Sweep flag of the outer limb: right side for waxing, left for
	// waning (SVG arcs run clockwise in screen space when the flag is 1).
	limbSweep := 0
	if waxing {
		limbSweep = 1
	}

	// The terminator bows toward the lit limb for crescents and away
	// from it for gibbous phases.
	crescent := f < 0.25 || f >= 0.75
	termSweep := limbSweep
	if crescent {
		termSweep = 1 - limbSweep
	}

	return fmt.Sprintf("M %s,%s A %s,%s 0 0 %d %s,%s A %s,%s 0 0 %d %s,%s Z",
		num(moonCenter), num(top),
		num(moonRadius), num(moonRadius), limbSweep, num(moonCenter), num(bottom),
		num(rx), num(moonRadius), termSweep, num(moonCenter), num(top))
}

// wrapFraction reduces any finite fraction into [0,1). Non-finite input is
// passed through and surfaces as NaN coordinates in the markup; guarding
// against that is the caller's job.
func wrapFraction(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	f = math.Mod(f, 1)
	if f < 0 {
		f += 1
	}
	return f
}
