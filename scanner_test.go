package quasiparse

import (
	"testing"

	"bitbucket.org/creachadair/stringset"
	"github.com/stretchr/testify/require"
)

func testScanner(t *testing.T, template Template, keywords ...string) *Scanner {
	t.Helper()
	s, err := newScanner(template, stringset.New(keywords...))
	require.NoError(t, err)
	return s
}

func TestRuleSkipMixesSpaceAndComments(t *testing.T) {
	s := testScanner(t, Text("  # one\n # two\n  x"))
	pos, err := s.ruleSkip(0)
	require.NoError(t, err)
	tok, ok := s.token(pos)
	require.True(t, ok)
	require.Equal(t, "x", tok.Text)
}

func TestRuleSkipNeverFails(t *testing.T) {
	s := testScanner(t, Text("x"))
	pos, err := s.ruleSkip(0)
	require.NoError(t, err)
	require.Equal(t, 0, pos)
}

func TestEatText(t *testing.T) {
	s := testScanner(t, Text("  foo bar"))
	pos, v, err := s.eatText(0, "foo")
	require.NoError(t, err)
	require.Equal(t, "foo", v)

	// Failure backs off to the skipped position without consuming.
	failPos, v, err := s.eatText(pos, "nope")
	require.NoError(t, err)
	require.True(t, v == FAIL)
	tok, ok := s.token(failPos)
	require.True(t, ok)
	require.Equal(t, "bar", tok.Text)
}

func TestRuleNumberAndString(t *testing.T) {
	s := testScanner(t, Text(`12.5 "hi"`))
	pos, v, err := s.run(numberRule, 0)
	require.NoError(t, err)
	require.Equal(t, "12.5", v)
	_, v, err = s.run(stringRule, pos)
	require.NoError(t, err)
	require.Equal(t, `"hi"`, v)
}

func TestRuleIdentRejectsKeywords(t *testing.T) {
	s := testScanner(t, Text("let x"), "let")
	_, v, err := s.ruleIdent(0)
	require.NoError(t, err)
	require.True(t, v == FAIL, "keyword must not lex as IDENT")

	// But a plain identifier is fine.
	s2 := testScanner(t, Text("x"), "let")
	_, v, err = s2.ruleIdent(0)
	require.NoError(t, err)
	require.Equal(t, "x", v)
}

func TestRuleHole(t *testing.T) {
	s := testScanner(t, NewTemplate([]string{"a  ", "  b"}, nil))
	// Stream: "a", space, hole, space, "b".
	pos, v, err := s.ruleHole(1)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.Equal(t, 3, pos)

	// Holes are never consumed by SKIP.
	skipped, err := s.ruleSkip(1)
	require.NoError(t, err)
	require.Equal(t, 2, skipped)
}

func TestRuleEOF(t *testing.T) {
	s := testScanner(t, Text("  # only trivia"))
	_, v, err := s.ruleEOF(0)
	require.NoError(t, err)
	require.True(t, v == EOF)

	s2 := testScanner(t, Text("x"))
	_, v, err = s2.ruleEOF(0)
	require.NoError(t, err)
	require.True(t, v == FAIL)
}

func TestSentinelIdentity(t *testing.T) {
	require.Equal(t, "FAIL", FAIL.(*sentinel).String())
	require.Equal(t, "EOF", EOF.(*sentinel).String())
	require.False(t, FAIL == EOF)
}
