package quasiparse

import (
	"io"
	"regexp"

	"bitbucket.org/creachadair/stringset"

	"github.com/quasilang/quasiparse/lexer"
)

// Anchored variants of the token sub-patterns, used to classify whole
// lexemes once the lexer has cut them.
var (
	anchoredSpace   = lexer.Anchored(lexer.SpaceRegexp)
	anchoredComment = lexer.Anchored(lexer.CommentRegexp)
	anchoredNumber  = lexer.Anchored(lexer.NumberRegexp)
	anchoredString  = lexer.Anchored(lexer.StringRegexp)
	anchoredIdent   = lexer.Anchored(lexer.IdentRegexp)
)

// A Scanner owns one parse invocation: the token stream of the input
// template, the reserved-keyword set of the grammar, the memo table and its
// counters. Stream indexes are the positions used throughout rule execution.
// A Scanner is not reused across parses.
type Scanner struct {
	template Template
	elements []lexer.Element
	keywords stringset.Set

	memo     map[int]map[int]*memoEntry
	hits     int
	misses   int
	furthest int
	expected stringset.Set

	trace    io.Writer
	depth    int
	noMemo   bool
	statsOut *ParseStats
}

func newScanner(t Template, keywords stringset.Set) (*Scanner, error) {
	elements, err := lexer.Lex(t.Segments, lexer.DefaultPattern())
	if err != nil {
		return nil, err
	}
	return &Scanner{
		template: t,
		elements: elements,
		keywords: keywords,
		memo:     map[int]map[int]*memoEntry{},
		furthest: -1,
		expected: stringset.New(),
	}, nil
}

func (s *Scanner) token(pos int) (lexer.Token, bool) {
	if pos < 0 || pos >= len(s.elements) {
		return lexer.Token{}, false
	}
	t, ok := s.elements[pos].(lexer.Token)
	return t, ok
}

// skip consumes the token at pos if its text fully matches re. Holes are
// never skipped.
func (s *Scanner) skip(pos int, re *regexp.Regexp) (int, interface{}) {
	if t, ok := s.token(pos); ok && re.MatchString(t.Text) {
		return pos + 1, ""
	}
	return pos, FAIL
}

func (s *Scanner) ruleComment(pos int) (int, interface{}, error) {
	newPos, v := s.skip(pos, anchoredComment)
	return newPos, v, nil
}

// ruleSkip consumes any mixture of whitespace and comment tokens. It never
// fails. Whitespace attempts are too cheap to memoise; comment attempts go
// through the substrate.
func (s *Scanner) ruleSkip(pos int) (int, error) {
	for {
		if newPos, v := s.skip(pos, anchoredSpace); v != FAIL {
			pos = newPos
			continue
		}
		newPos, v, err := s.run(commentRule, pos)
		if err != nil {
			return pos, err
		}
		if v == FAIL {
			return pos, nil
		}
		pos = newPos
	}
}

// eatText skips leading space, then consumes a token whose text equals patt.
func (s *Scanner) eatText(pos int, patt string) (int, interface{}, error) {
	pos, err := s.ruleSkip(pos)
	if err != nil {
		return pos, nil, err
	}
	if t, ok := s.token(pos); ok && t.Text == patt {
		return pos + 1, t.Text, nil
	}
	return pos, FAIL, nil
}

// eatPattern skips leading space, then consumes a token whose text fully
// matches the anchored pattern.
func (s *Scanner) eatPattern(pos int, re *regexp.Regexp) (int, interface{}, error) {
	pos, err := s.ruleSkip(pos)
	if err != nil {
		return pos, nil, err
	}
	if t, ok := s.token(pos); ok && re.MatchString(t.Text) {
		return pos + 1, t.Text, nil
	}
	return pos, FAIL, nil
}

// ruleIdent accepts an identifier token that is not a reserved keyword of
// the grammar.
func (s *Scanner) ruleIdent(pos int) (int, interface{}, error) {
	pos, err := s.ruleSkip(pos)
	if err != nil {
		return pos, nil, err
	}
	t, ok := s.token(pos)
	if !ok || !anchoredIdent.MatchString(t.Text) || s.keywords.Contains(t.Text) {
		return pos, FAIL, nil
	}
	return pos + 1, t.Text, nil
}

// ruleHole accepts the next interpolation gap. Holes are atomic: they are
// never absorbed by whitespace or comment skipping.
func (s *Scanner) ruleHole(pos int) (int, interface{}, error) {
	pos, err := s.ruleSkip(pos)
	if err != nil {
		return pos, nil, err
	}
	if pos < len(s.elements) {
		if h, ok := s.elements[pos].(lexer.Hole); ok {
			return pos + 1, int(h), nil
		}
	}
	return pos, FAIL, nil
}

// ruleEOF succeeds with the EOF sentinel iff only skippable tokens remain.
func (s *Scanner) ruleEOF(pos int) (int, interface{}, error) {
	pos, err := s.ruleSkip(pos)
	if err != nil {
		return pos, nil, err
	}
	if pos == len(s.elements) {
		return pos, EOF, nil
	}
	return pos, FAIL, nil
}

// lastToken returns the nearest real token before pos.
func (s *Scanner) lastToken(pos int) (lexer.Token, bool) {
	if pos > len(s.elements) {
		pos = len(s.elements)
	}
	for i := pos - 1; i >= 0; i-- {
		if t, ok := s.token(i); ok && !anchoredSpace.MatchString(t.Text) && !anchoredComment.MatchString(t.Text) {
			return t, true
		}
	}
	return lexer.Token{}, false
}

// syntaxError builds the parse-failure error for the furthest failure the
// failure tracker recorded.
func (s *Scanner) syntaxError() error {
	pos, expected := s.lastFailures()
	if pos < 0 {
		pos = 0
	}
	serr := &SyntaxError{
		Template: s.template.String(),
		Expected: expected,
	}
	if pos >= len(s.elements) {
		if last, ok := s.lastToken(pos); ok {
			serr.Msg = "Unexpected EOF after " + last.String()
			serr.Pos = last.Pos
		} else {
			serr.Msg = "Unexpected EOF"
		}
		return serr
	}
	switch e := s.elements[pos].(type) {
	case lexer.Token:
		serr.Msg = "Unexpected " + e.String()
		serr.Pos = e.Pos
	case lexer.Hole:
		serr.Msg = "Unexpected " + e.String()
		if last, ok := s.lastToken(pos); ok {
			serr.Pos = last.Pos
		}
	}
	return serr
}
