// Package planets reports which naked-eye planets are worth looking for on
// a given night. The model is an orbital-phase heuristic: where each planet
// sits in its own period fixes a sky description, a visibility flag, and an
// interpolated brightness. It is a deliberate stand-in for real ephemeris
// data, tuned to be plausible and fully deterministic rather than precise.
package planets

import (
	"math"
	"time"

	"github.com/skydash/skydash/pkg/astrotime"
)

// Sighting is one planet's entry in the nightly report.
type Sighting struct {
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Magnitude float64 `json:"magnitude"`
	Visible   bool    `json:"isVisible"`
}

// planet holds the static constants the heuristic runs on. Brightest and
// dimmest are apparent magnitudes (lower is brighter).
type planet struct {
	name      string
	periodDay float64
	brightest float64
	dimmest   float64
	describe  func(phase float64) (position string, visible bool)
}

var catalog = []planet{
	{
		name: "Mercury", periodDay: 87.97, brightest: -2.4, dimmest: 5.7,
		describe: func(phase float64) (string, bool) {
			// Mercury never strays far from the Sun; only the middle
			// of its cycle reads as observable twilight elongation.
			switch {
			case phase >= 0.3 && phase < 0.5:
				return "Low in the east before sunrise", true
			case phase >= 0.5 && phase < 0.7:
				return "Low in the west after sunset", true
			default:
				return "Lost in the Sun's glare", false
			}
		},
	},
	{
		name: "Venus", periodDay: 224.70, brightest: -4.9, dimmest: -3.8,
		describe: func(phase float64) (string, bool) {
			// Venus is always the morning or evening star.
			if phase < 0.5 {
				return "Bright in the east before dawn", true
			}
			return "Bright in the west after dusk", true
		},
	},
	{
		name: "Mars", periodDay: 686.98, brightest: -2.9, dimmest: 1.8,
		describe: outerPlanet,
	},
	{
		name: "Jupiter", periodDay: 4332.59, brightest: -2.9, dimmest: -1.6,
		describe: outerPlanet,
	},
	{
		name: "Saturn", periodDay: 10759.22, brightest: -0.5, dimmest: 1.5,
		describe: outerPlanet,
	},
}

// outerPlanet is the shared phase rule for Mars, Jupiter, and Saturn: they
// march east to west across the night sky for three quarters of the cycle
// and sit too close to the Sun in the last quartile.
func outerPlanet(phase float64) (string, bool) {
	switch {
	case phase < 0.25:
		return "Rising in the east after sunset", true
	case phase < 0.5:
		return "High in the sky at midnight", true
	case phase < 0.75:
		return "Setting in the west before dawn", true
	default:
		return "Too close to the Sun", false
	}
}

// backups are force-appended when fewer than two planets come out visible,
// so the report never reads as an empty sky. A presentation guarantee, not
// an astronomical one.
var backups = []Sighting{
	{Name: "Venus", Position: "Bright in the west after dusk", Magnitude: -4.0, Visible: true},
	{Name: "Jupiter", Position: "High in the sky at midnight", Magnitude: -2.2, Visible: true},
}

// Visible returns a sighting for each of the five naked-eye planets, with
// at least two always flagged visible. Latitude and longitude are accepted
// for interface symmetry with the other engines; the heuristic currently
// keys on time alone.
func Visible(t time.Time, lat, lng float64) []Sighting {
	jd := astrotime.JulianDay(t)
	hash := astrotime.DateNumber(t)

	sightings := make([]Sighting, 0, len(catalog))
	visibleCount := 0
	for i, p := range catalog {
		phase := orbitPhase(jd, p.periodDay)
		position, visible := p.describe(phase)

		// A date-keyed perturbation hides individual planets on some
		// nights for variety. Jupiter is exempt so the sky always has
		// an easy target.
		if p.name != "Jupiter" && (hash+i)%11 == 0 {
			position, visible = "Below the horizon tonight", false
		}

		if visible {
			visibleCount++
		}
		sightings = append(sightings, Sighting{
			Name:      p.name,
			Position:  position,
			Magnitude: magnitude(p, phase),
			Visible:   visible,
		})
	}

	if visibleCount < 2 {
		for _, b := range backups {
			if visibleCount >= 2 {
				break
			}
			if i := index(sightings, b.Name); i >= 0 {
				if !sightings[i].Visible {
					sightings[i] = b
					visibleCount++
				}
				continue
			}
			sightings = append(sightings, b)
			visibleCount++
		}
	}

	return sightings
}

// orbitPhase is the planet's position within its own period, in [0,1).
func orbitPhase(jd, periodDay float64) float64 {
	phase := math.Mod(jd-astrotime.J2000, periodDay)
	if phase < 0 {
		phase += periodDay
	}
	return phase / periodDay
}

// magnitude interpolates between the planet's brightest and dimmest values.
// |phase-0.5|*2 is 0 at mid-cycle (treated as brightest) and 1 at the
// ends: a crude stand-in for true phase-angle photometry.
func magnitude(p planet, phase float64) float64 {
	k := math.Abs(phase-0.5) * 2
	// Endpoint-exact form: k=1 must land on dimmest without rounding past
	// it.
	return p.brightest*(1-k) + p.dimmest*k
}

func index(sightings []Sighting, name string) int {
	for i := range sightings {
		if sightings[i].Name == name {
			return i
		}
	}
	return -1
}
