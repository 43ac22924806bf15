package skyview

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocumentEncode(t *testing.T) {
	d := NewDocument(10, 20)
	d.Rect(0, 0, 10, 20, "#000000")
	d.Circle(5, 5, 2.5, "#ffffff")
	d.Line(0, 0, 10, 20, "#888888", 1, 0.5)
	d.Text(1, 2, 12, "#ffffff", "hi")

	got := d.String()
	want := `<svg viewBox="0 0 10 20" xmlns="http://www.w3.org/2000/svg">` +
		`<rect x="0" y="0" width="10" height="20" fill="#000000"/>` +
		`<circle cx="5" cy="5" r="2.5" fill="#ffffff"/>` +
		`<line x1="0" y1="0" x2="10" y2="20" stroke="#888888" stroke-width="1" stroke-opacity="0.5"/>` +
		`<text x="1" y="2" font-size="12" fill="#ffffff">hi</text>` +
		`</svg>`
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("unexpected markup (-got,+want): %s", diff)
	}
}

func TestNumFormatting(t *testing.T) {
	table := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{2.5, "2.5"},
		{2.50, "2.5"},
		{0.333, "0.33"},
		{-1.2, "-1.2"},
		{100.009, "100.01"},
	}
	for _, tc := range table {
		if got := num(tc.in); got != tc.want {
			t.Errorf("num(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextEscaped(t *testing.T) {
	d := NewDocument(10, 10)
	d.Text(0, 0, 10, "#ffffff", "a<b & c>d")
	got := d.String()
	if !strings.Contains(got, "a&lt;b &amp; c&gt;d") {
		t.Errorf("text not escaped: %s", got)
	}
}
