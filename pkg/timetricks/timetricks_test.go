package timetricks

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	a := time.Date(2023, time.April, 5, 1, 2, 3, 0, time.UTC)
	b := time.Date(2023, time.April, 5, 23, 50, 0, 0, time.UTC)
	c := time.Date(2023, time.April, 6, 0, 0, 1, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same calendar day reported different")
	}
	if SameDay(a, c) {
		t.Error("different days reported same")
	}
}

func TestTrimClock(t *testing.T) {
	in := time.Date(2023, time.April, 5, 17, 42, 9, 0, time.UTC)
	got := TrimClock(in)
	if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("TrimClock left %02d:%02d:%02d on the clock", h, m, s)
	}
	if !SameDay(in, got) {
		t.Error("TrimClock changed the day")
	}
}
