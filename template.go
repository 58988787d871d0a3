package quasiparse

import (
	"fmt"
	"strings"
)

// holeGlyph is substituted for each hole when a template is printed.
const holeGlyph = "◊"

// A Template is the Go rendition of a tagged template literal: n+1 raw
// string segments with n interpolated hole values between them. Hole k sits
// between Segments[k] and Segments[k+1].
type Template struct {
	Segments []string
	Holes    []interface{}
}

// NewTemplate builds a Template, checking the segment/hole arity.
func NewTemplate(segments []string, holes ...interface{}) Template {
	if len(segments) != len(holes)+1 {
		panic(fmt.Sprintf("quasiparse: template needs %d segments for %d holes, got %d",
			len(holes)+1, len(holes), len(segments)))
	}
	return Template{Segments: segments, Holes: holes}
}

// Text builds a hole-free Template from plain source.
func Text(source string) Template {
	return Template{Segments: []string{source}}
}

// String renders the template with one substitution glyph per hole.
func (t Template) String() string {
	return strings.Join(t.Segments, holeGlyph)
}
