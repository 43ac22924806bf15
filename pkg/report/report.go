// Package report assembles the engines' outputs into the response object
// the API serves. It is also the validation boundary: the computation
// packages below it are total over their numeric domain and never check
// their inputs, so everything that can be malformed is rejected here.
package report

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/skydash/skydash/pkg/constellations"
	"github.com/skydash/skydash/pkg/moon"
	"github.com/skydash/skydash/pkg/planets"
	"github.com/skydash/skydash/pkg/skyview"
	"github.com/skydash/skydash/pkg/sunset"
)

// DateLayout is the wire format for request dates.
const DateLayout = "2006-01-02"

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Request is one sky-report query.
type Request struct {
	// Date is the calendar date, "YYYY-MM-DD". The report is computed
	// for midnight UTC of that date.
	Date string

	Latitude  float64
	Longitude float64

	// MoonLightColor optionally tints the lit part of the moon graphic.
	// "#RRGGBB"; empty or pure white leaves the default.
	MoonLightColor string
}

// Location echoes the observer coordinates back in the response.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MoonPhase is the moon block of the response.
type MoonPhase struct {
	Name         string `json:"name"`
	Illumination int    `json:"illumination"` // percent, 0-100
	Emoji        string `json:"emoji"`
	SVG          string `json:"svgPath"`
}

// Report is the full response object.
type Report struct {
	Date           string             `json:"date"`
	FormattedDate  string             `json:"formattedDate"`
	Location       Location           `json:"location"`
	MoonPhase      MoonPhase          `json:"moonPhase"`
	Constellations []string           `json:"constellations"`
	Planets        []planets.Sighting `json:"planets"`
	StarMapSVG     string             `json:"starMapSvg"`
	Darkness       sunset.Night       `json:"darkness"`
}

// Build validates a request and computes the report. Identical requests
// always produce identical reports, byte for byte.
func Build(req Request) (Report, error) {
	at, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return Report{}, fmt.Errorf("bad date %q: want YYYY-MM-DD", req.Date)
	}
	if math.IsNaN(req.Latitude) || req.Latitude < -90 || req.Latitude > 90 {
		return Report{}, fmt.Errorf("latitude %v out of range [-90, 90]", req.Latitude)
	}
	if math.IsNaN(req.Longitude) || req.Longitude < -180 || req.Longitude > 180 {
		return Report{}, fmt.Errorf("longitude %v out of range [-180, 180]", req.Longitude)
	}
	if req.MoonLightColor != "" && !colorPattern.MatchString(req.MoonLightColor) {
		return Report{}, fmt.Errorf("bad moon light color %q: want #RRGGBB", req.MoonLightColor)
	}

	phase := moon.PhaseAt(at)
	moonSVG := skyview.MoonGraphic(phase.Fraction).String()
	if tint := req.MoonLightColor; tint != "" && !strings.EqualFold(tint, skyview.LitFill) {
		moonSVG = strings.ReplaceAll(moonSVG, skyview.LitFill, tint)
	}

	visible := constellations.Visible(at, req.Latitude, req.Longitude)

	return Report{
		Date:          req.Date,
		FormattedDate: FormatDate(at),
		Location: Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		MoonPhase: MoonPhase{
			Name:         phase.Name,
			Illumination: int(math.Round(phase.Illumination * 100)),
			Emoji:        phase.Emoji,
			SVG:          moonSVG,
		},
		Constellations: visible,
		Planets:        planets.Visible(at, req.Latitude, req.Longitude),
		StarMapSVG:     skyview.StarMap(visible, at, req.Latitude, req.Longitude).String(),
		Darkness:       sunset.NightAt(at, req.Latitude, req.Longitude),
	}, nil
}

// FormatDate renders a date the way the dashboard header shows it:
// "January 2nd, 2006".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d",
		t.Month().String(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// String renders the report as the plain text the CLI prints.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %.4f, %.4f\n", r.FormattedDate, r.Location.Latitude, r.Location.Longitude)
	fmt.Fprintf(&b, "Moon: %s %s (%d%% illuminated)\n", r.MoonPhase.Emoji, r.MoonPhase.Name, r.MoonPhase.Illumination)
	fmt.Fprintf(&b, "Constellations: %s\n", strings.Join(r.Constellations, ", "))
	for _, p := range r.Planets {
		marker := " "
		if p.Visible {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-8s mag %+.1f  %s\n", marker, p.Name, p.Magnitude, p.Position)
	}
	return b.String()
}
