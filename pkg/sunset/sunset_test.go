package sunset

import (
	"testing"
	"time"

	"github.com/skydash/skydash/pkg/timetricks"
)

func TestNightAtNewYork(t *testing.T) {
	at := time.Date(2023, time.October, 14, 0, 0, 0, 0, time.UTC)
	night := NightAt(at, 40.7128, -74.0060)

	if !night.Sunset.Before(night.Sunrise) {
		t.Fatalf("sunset %v not before sunrise %v", night.Sunset, night.Sunrise)
	}
	if !timetricks.SameDay(at, night.Sunset) {
		t.Errorf("sunset %v not on requested day %v", night.Sunset, at)
	}
	dark := night.Sunrise.Sub(night.Sunset)
	if dark < 6*time.Hour || dark > 18*time.Hour {
		t.Errorf("implausible darkness duration %v", dark)
	}
}

func TestNightAtSeasons(t *testing.T) {
	// Mid-latitude winter nights are longer than summer nights.
	winter := NightAt(time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC), 51.5, -0.12)
	summer := NightAt(time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC), 51.5, -0.12)

	winterDark := winter.Sunrise.Sub(winter.Sunset)
	summerDark := summer.Sunrise.Sub(summer.Sunset)
	if winterDark <= summerDark {
		t.Errorf("winter night %v not longer than summer night %v", winterDark, summerDark)
	}
}

func TestNightAtDeterministic(t *testing.T) {
	at := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	a := NightAt(at, -33.8688, 151.2093)
	b := NightAt(at, -33.8688, 151.2093)
	if !a.Sunset.Equal(b.Sunset) || !a.Sunrise.Equal(b.Sunrise) {
		t.Errorf("same inputs gave different windows: %+v vs %+v", a, b)
	}
}
