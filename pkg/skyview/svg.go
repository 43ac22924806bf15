// Package skyview renders the nightly astronomy results into SVG.
//
// Markup is assembled from typed shape records and encoded at the end,
// rather than built up by string concatenation, so geometry and escaping
// stay separate concerns. Every renderer here is a pure function of its
// inputs and produces byte-identical output for identical inputs.
package skyview

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Document is an SVG with a fixed viewbox and an ordered list of shapes.
type Document struct {
	Width, Height int
	shapes        []shape
}

func NewDocument(width, height int) *Document {
	return &Document{Width: width, Height: height}
}

type shape interface {
	encode(w io.Writer) (int, error)
}

// Encode writes the document as SVG markup. The io closure accumulates
// byte counts and holds the first error, so each shape writes exactly once.
func (d *Document) Encode(w io.Writer) (int, error) {
	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if err == nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`,
		d.Width, d.Height))
	for _, s := range d.shapes {
		io(s.encode(w))
	}
	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

// String renders the document to a string.
func (d *Document) String() string {
	var b bytes.Buffer
	d.Encode(&b)
	return b.String()
}

// Rect appends a filled rectangle.
func (d *Document) Rect(x, y, w, h float64, fill string) {
	d.shapes = append(d.shapes, rect{x, y, w, h, fill})
}

// Circle appends a filled circle with full opacity.
func (d *Document) Circle(cx, cy, r float64, fill string) {
	d.CircleOpacity(cx, cy, r, fill, 1)
}

// CircleOpacity appends a filled circle with the given fill opacity.
func (d *Document) CircleOpacity(cx, cy, r float64, fill string, opacity float64) {
	d.shapes = append(d.shapes, circle{cx, cy, r, fill, opacity})
}

// Path appends a filled path from pre-built path data.
func (d *Document) Path(data, fill string) {
	d.shapes = append(d.shapes, path{data, fill})
}

// Line appends a stroked line segment.
func (d *Document) Line(x1, y1, x2, y2 float64, stroke string, width, opacity float64) {
	d.shapes = append(d.shapes, line{x1, y1, x2, y2, stroke, width, opacity})
}

// Text appends a text label anchored at its start.
func (d *Document) Text(x, y float64, size int, fill, content string) {
	d.shapes = append(d.shapes, text{x, y, size, fill, content})
}

type rect struct {
	x, y, w, h float64
	fill       string
}

func (s rect) encode(w io.Writer) (int, error) {
	return fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		num(s.x), num(s.y), num(s.w), num(s.h), s.fill)
}

type circle struct {
	cx, cy, r float64
	fill      string
	opacity   float64
}

func (s circle) encode(w io.Writer) (int, error) {
	if s.opacity != 1 {
		return fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"/>`,
			num(s.cx), num(s.cy), num(s.r), s.fill, num(s.opacity))
	}
	return fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		num(s.cx), num(s.cy), num(s.r), s.fill)
}

type path struct {
	data string
	fill string
}

func (s path) encode(w io.Writer) (int, error) {
	return fmt.Fprintf(w, `<path d="%s" fill="%s"/>`, s.data, s.fill)
}

type line struct {
	x1, y1, x2, y2 float64
	stroke         string
	width, opacity float64
}

func (s line) encode(w io.Writer) (int, error) {
	return fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-opacity="%s"/>`,
		num(s.x1), num(s.y1), num(s.x2), num(s.y2), s.stroke, num(s.width), num(s.opacity))
}

type text struct {
	x, y    float64
	size    int
	fill    string
	content string
}

func (s text) encode(w io.Writer) (int, error) {
	return fmt.Fprintf(w, `<text x="%s" y="%s" font-size="%d" fill="%s">%s</text>`,
		num(s.x), num(s.y), s.size, s.fill, escapeText(s.content))
}

// num formats coordinates with two decimals and trailing zeros trimmed, so
// identical geometry always serializes identically.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

func escapeText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
