// Package constellations picks which named constellations a dashboard
// should show for a given night and observer. The selection is a seasonal
// heuristic keyed on local sidereal time, not a rigorous horizon-altitude
// computation; it exists to always hand the renderer a plausible,
// deterministic set of 4–5 figures.
package constellations

// Season is the astronomical season used for catalog affinity.
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Fall
)

func (s Season) String() string {
	switch s {
	case Winter:
		return "winter"
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Fall:
		return "fall"
	default:
		return "unknown"
	}
}

// Hemisphere is the part of the sky a constellation belongs to.
type Hemisphere int

const (
	North Hemisphere = iota
	South
	Both
)

// Point is a star position in the constellation's own pixel space,
// roughly 100x90, used only for stick-figure rendering.
type Point struct {
	X, Y float64
}

// Constellation is one static catalog entry. Stars and Lines describe the
// stick figure; they may be empty, in which case the renderer substitutes
// a default shape.
type Constellation struct {
	Name    string
	Abbrev  string
	RAHours float64 // approximate right-ascension center
	Season  Season
	Sky     Hemisphere
	Stars   []Point
	Lines   [][2]int
}

// seasonal is the by-season catalog the visibility filter draws from.
var seasonal = []Constellation{
	// Winter sky.
	{
		Name: "Orion", Abbrev: "Ori", RAHours: 5.5, Season: Winter, Sky: Both,
		Stars: []Point{
			{62, 15}, {50, 8}, {38, 18}, // shoulders and head
			{55, 45}, {50, 47}, {45, 49}, // belt
			{60, 78}, {35, 75}, // feet
		},
		Lines: [][2]int{{0, 1}, {1, 2}, {0, 3}, {2, 5}, {3, 4}, {4, 5}, {3, 6}, {5, 7}},
	},
	{
		Name: "Taurus", Abbrev: "Tau", RAHours: 4.6, Season: Winter, Sky: Both,
		Stars: []Point{{60, 50}, {50, 42}, {42, 46}, {45, 55}, {28, 20}, {24, 72}},
		Lines: [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 4}, {3, 5}},
	},
	{
		Name: "Gemini", Abbrev: "Gem", RAHours: 7.1, Season: Winter, Sky: North,
		Stars: []Point{
			{35, 15}, {35, 35}, {33, 55}, {38, 75},
			{60, 12}, {58, 32}, {62, 52}, {60, 72},
		},
		Lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}, {1, 5}},
	},
	{Name: "Canis Major", Abbrev: "CMa", RAHours: 6.8, Season: Winter, Sky: Both},
	{Name: "Canis Minor", Abbrev: "CMi", RAHours: 7.6, Season: Winter, Sky: Both},
	{Name: "Auriga", Abbrev: "Aur", RAHours: 6.0, Season: Winter, Sky: North},
	{Name: "Perseus", Abbrev: "Per", RAHours: 3.4, Season: Winter, Sky: North},
	{Name: "Eridanus", Abbrev: "Eri", RAHours: 3.0, Season: Winter, Sky: South},

	// Spring sky.
	{
		Name: "Leo", Abbrev: "Leo", RAHours: 10.7, Season: Spring, Sky: Both,
		Stars: []Point{
			{30, 70}, {32, 55}, {38, 42}, {33, 30}, {22, 24}, {12, 32}, // sickle
			{70, 45}, {85, 60}, {68, 62}, // hindquarters
		},
		Lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {2, 6}, {6, 7}, {7, 8}, {8, 0}},
	},
	{
		Name: "Ursa Major", Abbrev: "UMa", RAHours: 11.3, Season: Spring, Sky: North,
		Stars: []Point{{10, 40}, {25, 35}, {40, 38}, {52, 45}, {68, 42}, {80, 55}, {62, 62}},
		Lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 3}},
	},
	{Name: "Virgo", Abbrev: "Vir", RAHours: 13.4, Season: Spring, Sky: Both},
	{Name: "Boötes", Abbrev: "Boo", RAHours: 14.7, Season: Spring, Sky: North},
	{Name: "Hydra", Abbrev: "Hya", RAHours: 10.2, Season: Spring, Sky: South},
	{Name: "Cancer", Abbrev: "Cnc", RAHours: 8.7, Season: Spring, Sky: North},
	{Name: "Corvus", Abbrev: "Crv", RAHours: 12.4, Season: Spring, Sky: South},
	{Name: "Coma Berenices", Abbrev: "Com", RAHours: 12.8, Season: Spring, Sky: North},

	// Summer sky.
	{
		Name: "Cygnus", Abbrev: "Cyg", RAHours: 20.6, Season: Summer, Sky: North,
		Stars: []Point{{50, 12}, {50, 40}, {50, 72}, {22, 52}, {78, 28}},
		Lines: [][2]int{{0, 1}, {1, 2}, {1, 3}, {1, 4}},
	},
	{
		Name: "Lyra", Abbrev: "Lyr", RAHours: 18.9, Season: Summer, Sky: North,
		Stars: []Point{{50, 15}, {42, 30}, {58, 32}, {46, 52}, {62, 54}},
		Lines: [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {3, 4}, {4, 2}},
	},
	{
		Name: "Scorpius", Abbrev: "Sco", RAHours: 16.9, Season: Summer, Sky: Both,
		Stars: []Point{
			{18, 10}, {26, 18}, {23, 28}, {35, 36}, {44, 46},
			{51, 58}, {55, 70}, {48, 80}, {37, 84}, {29, 77},
		},
		Lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9}},
	},
	{Name: "Aquila", Abbrev: "Aql", RAHours: 19.7, Season: Summer, Sky: Both},
	{Name: "Sagittarius", Abbrev: "Sgr", RAHours: 19.1, Season: Summer, Sky: Both},
	{Name: "Hercules", Abbrev: "Her", RAHours: 17.4, Season: Summer, Sky: North},
	{Name: "Ophiuchus", Abbrev: "Oph", RAHours: 17.2, Season: Summer, Sky: Both},

	// Fall sky.
	{
		Name: "Pegasus", Abbrev: "Peg", RAHours: 22.7, Season: Fall, Sky: North,
		Stars: []Point{{25, 25}, {75, 20}, {78, 70}, {22, 72}},
		Lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	},
	{Name: "Andromeda", Abbrev: "And", RAHours: 0.8, Season: Fall, Sky: North},
	{Name: "Pisces", Abbrev: "Psc", RAHours: 0.5, Season: Fall, Sky: Both},
	{Name: "Aquarius", Abbrev: "Aqr", RAHours: 22.3, Season: Fall, Sky: Both},
	{Name: "Cetus", Abbrev: "Cet", RAHours: 1.7, Season: Fall, Sky: Both},
	{Name: "Aries", Abbrev: "Ari", RAHours: 2.6, Season: Fall, Sky: Both},
	{Name: "Capricornus", Abbrev: "Cap", RAHours: 21.0, Season: Fall, Sky: South},
	{Name: "Grus", Abbrev: "Gru", RAHours: 22.5, Season: Fall, Sky: South},
}

// circumpolarNorth never sets for typical northern latitudes. Order
// matters: the date hash indexes into these lists.
var circumpolarNorth = []Constellation{
	{
		Name: "Ursa Minor", Abbrev: "UMi", RAHours: 15.0, Sky: North,
		Stars: []Point{{50, 10}, {45, 22}, {42, 34}, {38, 46}, {28, 52}, {20, 44}, {30, 36}},
		Lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 3}},
	},
	{
		Name: "Cassiopeia", Abbrev: "Cas", RAHours: 1.0, Sky: North,
		Stars: []Point{{10, 40}, {28, 25}, {45, 38}, {62, 22}, {80, 35}},
		Lines: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
	},
	{Name: "Cepheus", Abbrev: "Cep", RAHours: 22.0, Sky: North},
	{Name: "Draco", Abbrev: "Dra", RAHours: 17.0, Sky: North},
	{Name: "Camelopardalis", Abbrev: "Cam", RAHours: 6.0, Sky: North},
}

// circumpolarSouth is the southern-hemisphere counterpart.
var circumpolarSouth = []Constellation{
	{
		Name: "Crux", Abbrev: "Cru", RAHours: 12.4, Sky: South,
		Stars: []Point{{50, 10}, {50, 80}, {15, 50}, {85, 45}},
		Lines: [][2]int{{0, 1}, {2, 3}},
	},
	{Name: "Carina", Abbrev: "Car", RAHours: 8.7, Sky: South},
	{Name: "Centaurus", Abbrev: "Cen", RAHours: 13.0, Sky: South},
	{Name: "Octans", Abbrev: "Oct", RAHours: 21.0, Sky: South},
	{Name: "Musca", Abbrev: "Mus", RAHours: 12.6, Sky: South},
}

// fallback pads a thin result up to the 4-constellation floor. These are
// household names so the dashboard never looks empty.
var fallback = []string{"Orion", "Ursa Major", "Cassiopeia", "Leo", "Scorpius", "Cygnus"}

// byName indexes every catalog entry for renderer lookups.
var byName = func() map[string]Constellation {
	m := make(map[string]Constellation)
	for _, group := range [][]Constellation{seasonal, circumpolarNorth, circumpolarSouth} {
		for _, c := range group {
			m[c.Name] = c
		}
	}
	return m
}()

// Lookup returns the catalog entry for a name. The second return is false
// for unknown names; callers are expected to degrade gracefully rather
// than fail.
func Lookup(name string) (Constellation, bool) {
	c, ok := byName[name]
	return c, ok
}
