package quasiparse

import (
	"fmt"
	"strings"

	"github.com/quasilang/quasiparse/lexer"
)

// Error is implemented by every error the engine surfaces.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position within the originating template, if known.
	Position() lexer.Position
}

// GrammarError reports misuse of the engine by the grammar author: a
// reference to an undefined rule, a malformed production, a bad action
// value, or left recursion.
type GrammarError struct {
	Msg string
	Pos lexer.Position
}

func grammarErrorf(format string, args ...interface{}) *GrammarError {
	return &GrammarError{Msg: fmt.Sprintf(format, args...)}
}

func (g *GrammarError) Message() string          { return g.Msg }
func (g *GrammarError) Position() lexer.Position { return g.Pos }

func (g *GrammarError) Error() string {
	if g.Pos == (lexer.Position{}) {
		return g.Msg
	}
	return lexer.FormatError(g.Pos, g.Msg)
}

// SyntaxError reports that the grammar did not match the input template. It
// carries the rendered template, the furthest-advanced failure and the set
// of terminals expected there.
type SyntaxError struct {
	// Template is the input rendered with one glyph per hole.
	Template string
	// Msg names the offending token, or reports unexpected EOF.
	Msg string
	// Expected is the sorted set of terminal patterns that failed at the
	// furthest position.
	Expected []string
	// Pos is the position of the offending token. When the failure is at
	// end of input or at a hole, it is the position of the last real token
	// before it, if there is one.
	Pos lexer.Position
}

func (s *SyntaxError) Message() string          { return s.Msg }
func (s *SyntaxError) Position() lexer.Position { return s.Pos }

func (s *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error in %q: %s", s.Template, s.Msg)
	if len(s.Expected) > 0 {
		msg += "; expected " + strings.Join(s.Expected, " or ")
	}
	return msg
}
