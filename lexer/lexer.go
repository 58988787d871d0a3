package lexer

import "regexp"

// Sub-expressions of the default token pattern. The string form is the
// JSON-style double-quoted string; comments run from # to end of line.
var (
	SpaceRegexp   = regexp.MustCompile(`\s+`)
	NumberRegexp  = regexp.MustCompile(`\d+(?:\.\d+)?`)
	StringRegexp  = regexp.MustCompile(`"(?:[^"\\]|\\(?:["\\/bfnrt]|u[0-9a-fA-F]{4}))*"`)
	IdentRegexp   = regexp.MustCompile(`[a-zA-Z_]\w*`)
	PunctRegexp   = regexp.MustCompile(`[\[\](){},;]`)
	OpRegexp      = regexp.MustCompile(`[-+*/<>=!&|^%?:.~]+`)
	CommentRegexp = regexp.MustCompile(`#[^\n]*`)
)

// DefaultPattern builds the token pattern used to scan template segments: a
// single capture group alternating over whitespace, numbers, strings,
// identifiers, punctuation, operator runs and line comments. The capture's
// match at each step is the lexeme.
func DefaultPattern() *Sticky {
	return NewSticky(Capture(Alternation(
		SpaceRegexp,
		NumberRegexp,
		StringRegexp,
		IdentRegexp,
		PunctRegexp,
		OpRegexp,
		CommentRegexp,
	)))
}

// Lex tokenises the ordered segments of a template with the given sticky
// pattern, appending a Hole marker between consecutive segments. Whitespace
// and comments become ordinary tokens; it is the parser's business to skip
// them. The concatenated Text of a segment's tokens always equals the
// segment.
func Lex(segments []string, pattern *Sticky) ([]Element, error) {
	var out []Element
	for segnum, segment := range segments {
		if segnum > 0 {
			out = append(out, Hole(segnum-1))
		}
		offset := 0
		for offset < len(segment) {
			idx := pattern.FindAt(segment, offset)
			if idx == nil {
				slice := segment[offset:]
				if len(slice) > 20 {
					slice = slice[:20]
				}
				pos := Position{Segment: segnum, Start: offset, After: len(segment)}
				return nil, errorf(pos, "unexpected text %q", slice)
			}
			if idx[0] != offset || idx[2] != idx[0] || idx[3] != idx[1] {
				pos := Position{Segment: segnum, Start: offset, After: idx[1]}
				return nil, errorf(pos, "internal: token pattern skewed at %q", segment[offset:idx[1]])
			}
			if idx[1] == idx[0] {
				pos := Position{Segment: segnum, Start: offset, After: offset}
				return nil, errorf(pos, "internal: token pattern matched nothing")
			}
			out = append(out, Token{
				Text: segment[idx[2]:idx[3]],
				Pos:  Position{Segment: segnum, Start: idx[2], After: idx[3]},
			})
			offset = idx[1]
		}
	}
	return out, nil
}
