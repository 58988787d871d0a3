package quasiparse

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTemplateString(t *testing.T) {
	tpl := NewTemplate([]string{"a+", "*b", "c"}, 1, 2)
	require.Equal(t, "a+◊*b◊c", tpl.String())

	// One substitution glyph per hole.
	runes := 0
	for _, segment := range tpl.Segments {
		runes += utf8.RuneCountInString(segment)
	}
	require.Equal(t, runes+len(tpl.Holes), utf8.RuneCountInString(tpl.String()))
}

func TestNewTemplateArity(t *testing.T) {
	require.Panics(t, func() { NewTemplate([]string{"a"}, 1) })
	require.Panics(t, func() { NewTemplate([]string{"a", "b"}) })
	require.NotPanics(t, func() { NewTemplate([]string{"a", "b"}, 1) })
}

func TestTextTemplate(t *testing.T) {
	tpl := Text("abc")
	require.Equal(t, []string{"abc"}, tpl.Segments)
	require.Empty(t, tpl.Holes)
	require.Equal(t, "abc", tpl.String())
}

func TestSyntaxErrorShowsRenderedTemplate(t *testing.T) {
	g := MustCompile(Text(`start ::= HOLE "end" ;`))
	_, err := g.Parse(NewTemplate([]string{"", " nope"}, 9))
	require.Error(t, err)
	serr, ok := err.(*SyntaxError)
	require.True(t, ok, "error type %T", err)
	require.Equal(t, "◊ nope", serr.Template)
}
