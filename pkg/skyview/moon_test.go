package skyview

import (
	"strings"
	"testing"
)

func TestMoonGraphicNewIsDarkDisc(t *testing.T) {
	got := MoonGraphic(0).String()
	if !strings.Contains(got, darkFill) {
		t.Errorf("new moon missing dark disc: %s", got)
	}
	if strings.Contains(got, LitFill) {
		t.Errorf("new moon has lit markup: %s", got)
	}
	// Wrapping fractions must agree with 0.
	if wrapped := MoonGraphic(1.0).String(); wrapped != got {
		t.Errorf("fraction 1.0 differs from 0.0")
	}
	if wrapped := MoonGraphic(0.99).String(); wrapped != got {
		t.Errorf("fraction 0.99 is not rendered as new")
	}
}

func TestMoonGraphicFullIsLitDisc(t *testing.T) {
	got := MoonGraphic(0.5).String()
	if !strings.Contains(got, `fill="`+LitFill+`"`) {
		t.Errorf("full moon has no lit disc: %s", got)
	}
	if strings.Contains(got, "<path") {
		t.Errorf("full moon should be a plain disc, got a path: %s", got)
	}
}

func TestMoonGraphicQuarters(t *testing.T) {
	first := MoonGraphic(0.25).String()
	last := MoonGraphic(0.75).String()
	for name, got := range map[string]string{"first": first, "last": last} {
		if !strings.Contains(got, "<path") {
			t.Errorf("%s quarter has no half-disc path: %s", name, got)
		}
		// A quarter is a single circular arc, no elliptical terminator.
		if strings.Count(got, "A ") != 1 {
			t.Errorf("%s quarter should contain exactly one arc: %s", name, got)
		}
	}
	if first == last {
		t.Error("first and last quarter rendered identically")
	}
}

func TestMoonGraphicCrescentHasTerminator(t *testing.T) {
	for _, f := range []float64{0.1, 0.35, 0.6, 0.9} {
		got := MoonGraphic(f).String()
		if !strings.Contains(got, "<path") {
			t.Errorf("fraction %v: no terminator path: %s", f, got)
		}
		if strings.Count(got, "A ") != 2 {
			t.Errorf("fraction %v: want limb + terminator arcs: %s", f, got)
		}
	}
	// Waxing and waning mirror images must differ.
	if MoonGraphic(0.1).String() == MoonGraphic(0.9).String() {
		t.Error("waxing and waning crescents rendered identically")
	}
}

func TestMoonGraphicViewBox(t *testing.T) {
	got := MoonGraphic(0.3).String()
	if !strings.HasPrefix(got, `<svg viewBox="0 0 100 100"`) {
		t.Errorf("unexpected viewbox: %s", got)
	}
	if !strings.HasSuffix(got, "</svg>") {
		t.Errorf("unterminated svg: %s", got)
	}
}
