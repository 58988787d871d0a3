package quasiparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileCollectsKeywords(t *testing.T) {
	g := MustCompile(Text(`start ::= "let" IDENT "in" start / IDENT ;`))
	require.Equal(t, []string{"in", "let"}, g.Keywords())
}

func TestCompilePunctuationIsNotAKeyword(t *testing.T) {
	g := MustCompile(Text(`start ::= "(" IDENT ")" ;`))
	require.Empty(t, g.Keywords())
}

func TestGrammarStringer(t *testing.T) {
	g := MustCompile(Text(`start ::= "a" item* ; item ::= IDENT ** "," / NUMBER ;`))
	rendered := g.String()
	require.Contains(t, rendered, `start ::= "a" item* ;`)
	require.Contains(t, rendered, `item ::= IDENT ** "," / NUMBER ;`)

	// The rendering is itself a valid grammar.
	again, err := Compile(Text(rendered))
	require.NoError(t, err)
	require.Equal(t, rendered, again.String())
}

func TestCompileRuleMissing(t *testing.T) {
	_, err := Compile(Text(`start ::= nope ;`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Rule missing: nope")
}

func TestCompileDuplicateProduction(t *testing.T) {
	_, err := Compile(Text(`a ::= "x" ; a ::= "y" ;`))
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate production "a"`)
}

func TestCompileMissingSemicolon(t *testing.T) {
	_, err := Compile(Text(`a ::= "x"`))
	require.Error(t, err)
	require.Contains(t, err.Error(), `expected ";"`)
}

func TestCompileMissingSeparator(t *testing.T) {
	_, err := Compile(Text(`a ::= IDENT ** ;`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected separator")
}

func TestCompileEmptyGrammar(t *testing.T) {
	_, err := Compile(Text("  # nothing here\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty grammar")
}

func TestCompileBadAction(t *testing.T) {
	_, err := Compile(NewTemplate([]string{`a ::= "x" `, ` ;`}, 42))
	require.Error(t, err)
	require.Contains(t, err.Error(), "semantic action")
}

func TestCompileStartRuleIsFirst(t *testing.T) {
	g := MustCompile(Text(`second ::= "b" ; first ::= "a" ;`))
	v, err := g.Parse(Text("b"))
	require.NoError(t, err)
	require.Equal(t, "b", v)
	_, err = g.Parse(Text("a"))
	require.Error(t, err)
}

func TestInnerHoleIsPlaceholder(t *testing.T) {
	// A non-trailing hole in the grammar compiles to the HOLE terminal.
	g := MustCompile(NewTemplate([]string{`start ::= "[" `, ` "]" ;`}, nil))
	v, err := g.Parse(NewTemplate([]string{"[ ", " ]"}, "ignored"))
	require.NoError(t, err)
	require.Equal(t, []interface{}{"[", 0, "]"}, v)
}

func TestCompileNamed(t *testing.T) {
	g := MustCompile(Text(`a ::= "x" ;`), Named("tiny"))
	require.Equal(t, "tiny", g.Name())
}
