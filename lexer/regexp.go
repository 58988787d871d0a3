package lexer

import (
	"regexp"
	"strings"
)

// This file is a small kit for composing the token pattern. Inputs must be
// plain sub-expressions: no start anchors and no flags that change where a
// match may begin. Passing an anchored expression is a programming error and
// panics at construction.

func checkBare(re *regexp.Regexp) string {
	src := re.String()
	if strings.HasPrefix(src, "^") || strings.HasPrefix(src, `\A`) {
		panic("lexer: pattern must not carry a start anchor: " + src)
	}
	return src
}

// Anchored returns a pattern equivalent to re but required to match the
// entire candidate string.
func Anchored(re *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + checkBare(re) + `)\z`)
}

// Alternation returns the ordered |-join of the given patterns. Go's regexp
// engine prefers the leftmost alternative that allows an overall match, which
// fixes first-match-wins order for the token pattern.
func Alternation(res ...*regexp.Regexp) *regexp.Regexp {
	srcs := make([]string, len(res))
	for i, re := range res {
		srcs[i] = `(?:` + checkBare(re) + `)`
	}
	return regexp.MustCompile(strings.Join(srcs, `|`))
}

// Capture wraps re in a single capturing group.
func Capture(re *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile(`(` + checkBare(re) + `)`)
}

// A Sticky pattern matches starting exactly at a caller-supplied offset.
// Go's regexp has no sticky flag, so the pattern is compiled with a \A anchor
// and applied to the tail of the input.
type Sticky struct {
	re *regexp.Regexp
}

// NewSticky compiles a sticky variant of re.
func NewSticky(re *regexp.Regexp) *Sticky {
	return &Sticky{re: regexp.MustCompile(`\A(?:` + checkBare(re) + `)`)}
}

// FindAt matches the pattern against text starting exactly at offset. The
// returned index pairs are rebased to text, in the layout of
// regexp.FindStringSubmatchIndex. Returns nil if the pattern does not match
// at offset.
func (s *Sticky) FindAt(text string, offset int) []int {
	idx := s.re.FindStringSubmatchIndex(text[offset:])
	if idx == nil {
		return nil
	}
	for i, v := range idx {
		if v >= 0 {
			idx[i] = v + offset
		}
	}
	return idx
}

func (s *Sticky) String() string {
	return s.re.String()
}
