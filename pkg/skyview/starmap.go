package skyview

import (
	"math"
	"time"

	"github.com/skydash/skydash/pkg/astrotime"
	"github.com/skydash/skydash/pkg/constellations"
)

// Star map canvas. Fixed size; the caller scales with CSS.
const (
	mapWidth  = 800
	mapHeight = 500

	backgroundStarCount = 200

	skyFill   = "#0b1026"
	starFill  = "#ffffff"
	lineColor = "#8fa3c7"
	labelFill = "#cbd5e8"
)

// anchors are the canvas slots the (up to five) constellations land in.
var anchors = [][2]float64{
	{80, 70},
	{420, 50},
	{610, 190},
	{130, 290},
	{430, 320},
}

// defaultFigure is the placeholder stick figure for constellations the
// catalog has no drawing for: four stars in a diamond.
var defaultFigure = struct {
	stars []constellations.Point
	lines [][2]int
}{
	stars: []constellations.Point{{X: 50, Y: 10}, {X: 90, Y: 50}, {X: 50, Y: 90}, {X: 10, Y: 50}},
	lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
}

// StarMap renders a decorative night-sky canvas: a date-seeded background
// star field plus a labeled stick figure for each requested constellation.
// The background positions come from a hash, not a real star catalog; the
// point is reproducible texture, and the whole map is byte-identical for
// identical inputs.
func StarMap(names []string, t time.Time, lat, lng float64) *Document {
	d := NewDocument(mapWidth, mapHeight)
	d.Rect(0, 0, mapWidth, mapHeight, skyFill)

	drawBackgroundStars(d, astrotime.DateNumber(t))

	// A small nightly drift so the same constellation doesn't pin to the
	// exact same pixels every day.
	lstHours := astrotime.LocalSiderealTime(t, lng) / 15.0
	offsetX := math.Mod(lstHours*7, 40) - 20
	offsetY := clamp(lat/3, -25, 25)

	for i, name := range names {
		if i >= len(anchors) {
			break
		}
		drawConstellation(d, name, anchors[i][0]+offsetX, anchors[i][1]+offsetY)
	}

	return d
}

func drawBackgroundStars(d *Document, seed int) {
	rng := newHashStream(seed)
	for i := 0; i < backgroundStarCount; i++ {
		x := rng.float() * mapWidth
		y := rng.float() * mapHeight
		r := 0.4 + rng.float()*1.1
		opacity := 0.25 + rng.float()*0.6
		d.CircleOpacity(round2(x), round2(y), round2(r), starFill, round2(opacity))
	}
}

func drawConstellation(d *Document, name string, baseX, baseY float64) {
	stars := defaultFigure.stars
	lines := defaultFigure.lines
	if c, ok := constellations.Lookup(name); ok && len(c.Stars) > 0 {
		stars = c.Stars
		lines = c.Lines
	}

	const scale = 0.9

	at := func(p constellations.Point) (float64, float64) {
		return baseX + p.X*scale, baseY + p.Y*scale
	}

	// Lines first so the star dots sit on top.
	for _, seg := range lines {
		x1, y1 := at(stars[seg[0]])
		x2, y2 := at(stars[seg[1]])
		d.Line(round2(x1), round2(y1), round2(x2), round2(y2), lineColor, 1, 0.6)
	}
	for _, p := range stars {
		x, y := at(p)
		d.CircleOpacity(round2(x), round2(y), 1.8, starFill, 0.95)
	}
	d.Text(round2(baseX), round2(baseY-8), 12, labelFill, name)
}

// hashStream is a small linear-congruential generator (Numerical Recipes
// constants). One explicit, seedable stream per map; no global RNG state
// is touched.
type hashStream struct {
	state uint32
}

func newHashStream(seed int) *hashStream {
	return &hashStream{state: uint32(seed)}
}

func (h *hashStream) next() uint32 {
	h.state = h.state*1664525 + 1013904223
	return h.state
}

// float returns the next value in [0,1).
func (h *hashStream) float() float64 {
	return float64(h.next()) / (float64(math.MaxUint32) + 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
