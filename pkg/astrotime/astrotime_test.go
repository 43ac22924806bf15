package astrotime

import (
	"math"
	"testing"
	"time"
)

func TestJulianDayKnownValues(t *testing.T) {
	table := []struct {
		name string
		t    time.Time
		want float64
	}{{
		name: "J2000 epoch",
		t:    time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		want: 2451545.0,
	}, {
		name: "reference new moon date",
		t:    time.Date(2000, time.January, 6, 0, 0, 0, 0, time.UTC),
		want: 2451549.5,
	}, {
		name: "sputnik launch",
		t:    time.Date(1957, time.October, 4, 19, 28, 34, 0, time.UTC),
		want: 2436116.31150,
	}, {
		name: "leap day",
		t:    time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		want: 2460369.5,
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got := JulianDay(tc.t)
			if math.Abs(got-tc.want) > 1e-5 {
				t.Errorf("JulianDay(%v) = %.6f, want %.6f", tc.t, got, tc.want)
			}
		})
	}
}

func TestJulianDayMonotonic(t *testing.T) {
	start := time.Date(1990, time.March, 14, 3, 0, 0, 0, time.UTC)
	prev := JulianDay(start)
	for i := 1; i < 2000; i++ {
		next := JulianDay(start.Add(time.Duration(i) * 7 * time.Hour))
		if next <= prev {
			t.Fatalf("JulianDay not increasing at step %d: %f then %f", i, prev, next)
		}
		prev = next
	}
}

func TestLocalSiderealTimeRange(t *testing.T) {
	longitudes := []float64{-180, -122.03, -74.006, 0, 31.2, 151.2, 180}
	start := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	for _, lon := range longitudes {
		for day := 0; day < 365; day += 13 {
			lst := LocalSiderealTime(start.AddDate(0, 0, day), lon)
			if lst < 0 || lst >= 360 {
				t.Errorf("LST out of range at lon %.2f day %d: %f", lon, day, lst)
			}
		}
	}
}

func TestLocalSiderealTimeGreenwichJ2000(t *testing.T) {
	// GMST at the J2000 epoch is the polynomial's constant term.
	got := LocalSiderealTime(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC), 0)
	want := 280.46061837
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("GMST at J2000 = %.8f, want %.8f", got, want)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	table := []struct {
		in, want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{725, 5},
		{-1, 359},
		{-725, 355},
	}
	for _, tc := range table {
		if got := NormalizeDegrees(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestDateNumber(t *testing.T) {
	got := DateNumber(time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC))
	if want := 20240307; got != want {
		t.Errorf("DateNumber = %d, want %d", got, want)
	}
}
