package quasiparse

import (
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// A Grammar is a compiled, immutable rule-set with one designated start
// rule. It may be shared freely between goroutines; each Parse owns its own
// Scanner, memo table and counters.
type Grammar struct {
	name     string
	rules    map[string]*compiledRule
	order    []string
	start    *compiledRule
	keywords stringset.Set
}

// Name returns the grammar's name.
func (g *Grammar) Name() string { return g.name }

// Keywords returns the reserved words collected from identifier-shaped
// literals, in sorted order.
func (g *Grammar) Keywords() []string { return g.keywords.Elements() }

// String renders the rule-set back as BNF, one production per line, in
// definition order.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, name := range g.order {
		b.WriteString(name)
		b.WriteString(" ::= ")
		b.WriteString(g.rules[name].body.String())
		b.WriteString(" ;\n")
	}
	return b.String()
}

// Parse applies the grammar to an input template: the start rule must match
// from the beginning of the token stream and EOF must follow. If the
// top-level value is a Processor it is applied to the template's hole
// values.
func (g *Grammar) Parse(t Template, options ...ParseOption) (interface{}, error) {
	s, err := newScanner(t, g.keywords)
	if err != nil {
		return nil, err
	}
	for _, opt := range options {
		opt(s)
	}
	defer s.finish()
	pos, value, err := s.run(g.start, 0)
	if err != nil {
		return nil, err
	}
	if value == FAIL {
		return nil, s.syntaxError()
	}
	_, end, err := s.run(eofRule, pos)
	if err != nil {
		return nil, err
	}
	if end == FAIL {
		return nil, s.syntaxError()
	}
	if p, ok := value.(Processor); ok {
		value = p(t.Holes...)
	}
	return value, nil
}

// ParseString parses plain source: a one-segment template with no holes.
func (g *Grammar) ParseString(source string, options ...ParseOption) (interface{}, error) {
	return g.Parse(Text(source), options...)
}
