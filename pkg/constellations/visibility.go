package constellations

import (
	"math"
	"sort"
	"time"

	"github.com/skydash/skydash/pkg/astrotime"
)

const (
	maxResults = 5
	minResults = 4

	// raWindowHours is how far (in circular RA hours) a constellation's
	// center may sit from the local meridian and still count as up.
	raWindowHours = 6.0
)

// Visible returns the names of up to five constellations to show for the
// given instant and observer, in priority order. Seasonal picks closest to
// the local meridian come first, then one or two circumpolar figures chosen
// deterministically from the date, then common fallbacks if the set is
// still under four.
func Visible(t time.Time, lat, lng float64) []string {
	season := seasonAt(t, lat)
	lstHours := astrotime.LocalSiderealTime(t, lng) / 15.0

	// Seasonal candidates near the meridian, closest first.
	type candidate struct {
		name string
		dist float64
	}
	var cands []candidate
	for _, c := range seasonal {
		if c.Season != season || !skyMatches(c.Sky, lat) {
			continue
		}
		d := circularHourDistance(c.RAHours, lstHours)
		if d <= raWindowHours {
			cands = append(cands, candidate{c.Name, d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	// One or two circumpolar picks join the list below, indexed by the
	// date hash so the set varies day to day but never within a day.
	// Seasonal picks leave room for them; the circumpolar entries are the
	// anchor of the star map and must survive the final truncation.
	pool := circumpolarNorth
	if lat < 0 {
		pool = circumpolarSouth
	}
	hash := astrotime.DateNumber(t)
	count := 1 + hash%2

	names := make([]string, 0, maxResults)
	for _, c := range cands {
		if len(names) == maxResults-count {
			break
		}
		names = append(names, c.name)
	}

	for i := 0; i < count; i++ {
		pick := pool[(hash/(i+1))%len(pool)].Name
		names = appendUnique(names, pick)
	}

	// Floor: pad with well-known figures so the dashboard never shows
	// fewer than four. Presentation choice, not astronomy.
	for _, name := range fallback {
		if len(names) >= minResults {
			break
		}
		names = appendUnique(names, name)
	}

	if len(names) > maxResults {
		names = names[:maxResults]
	}
	return names
}

// seasonAt maps a calendar date to its astronomical season, inverted for
// southern-hemisphere observers.
func seasonAt(t time.Time, lat float64) Season {
	s := northernSeason(int(t.Month()), t.Day())
	if lat < 0 {
		switch s {
		case Winter:
			return Summer
		case Summer:
			return Winter
		case Spring:
			return Fall
		case Fall:
			return Spring
		}
	}
	return s
}

func northernSeason(month, day int) Season {
	switch {
	case month == 12 && day >= 21, month == 1, month == 2, month == 3 && day <= 20:
		return Winter
	case month == 3, month == 4, month == 5, month == 6 && day <= 20:
		return Spring
	case month == 6, month == 7, month == 8, month == 9 && day <= 20:
		return Summer
	default:
		return Fall
	}
}

// circularHourDistance is the distance between two right ascensions on the
// 24-hour circle, handling the wrap at 0h/24h.
func circularHourDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 12 {
		d = 24 - d
	}
	return d
}

func skyMatches(h Hemisphere, lat float64) bool {
	switch h {
	case Both:
		return true
	case North:
		return lat >= 0
	default:
		return lat < 0
	}
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}
