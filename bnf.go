package quasiparse

import (
	"strconv"

	"bitbucket.org/creachadair/stringset"

	"github.com/quasilang/quasiparse/lexer"
)

// The grammar DSL is tokenised by the same lexer as parsed input, so the
// template's holes are first-class: a hole at the end of an alternative is
// its semantic action, a hole anywhere else compiles to a HOLE terminal.
//
//	grammar    ::= production+ EOF
//	production ::= IDENT "::=" body ";"
//	body       ::= seq ("/" seq)*
//	seq        ::= atom* HOLE?
//	atom       ::= prim ("*"|"+"|"?"|("**"|"++") prim)?
//	prim       ::= STRING | IDENT | "(" body ")"

type compiler struct {
	elements []lexer.Element
	holes    []interface{}
	pos      int

	g        *Grammar
	nextID   int
	literals map[string]*litMatcher
	refs     []*refNode
}

// Compile turns a grammar template into an immutable rule-set. The first
// production is the start rule. Literals that look like identifiers become
// reserved keywords, so IDENT will not match them in parsed input.
func Compile(t Template, options ...CompileOption) (*Grammar, error) {
	elements, err := lexer.Lex(t.Segments, lexer.DefaultPattern())
	if err != nil {
		return nil, err
	}
	c := &compiler{
		elements: elements,
		holes:    t.Holes,
		g: &Grammar{
			name:     "grammar",
			rules:    map[string]*compiledRule{},
			keywords: stringset.New(),
		},
		nextID:   numBuiltins,
		literals: map[string]*litMatcher{},
	}
	if err := c.parseGrammar(); err != nil {
		return nil, err
	}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	for _, opt := range options {
		opt(c.g)
	}
	return c.g, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(t Template, options ...CompileOption) *Grammar {
	g, err := Compile(t, options...)
	if err != nil {
		panic(err)
	}
	return g
}

func (c *compiler) newID() int {
	id := c.nextID
	c.nextID++
	return id
}

// skipTrivia advances the cursor past whitespace and comment tokens.
func (c *compiler) skipTrivia() {
	for c.pos < len(c.elements) {
		t, ok := c.elements[c.pos].(lexer.Token)
		if !ok {
			return
		}
		if !anchoredSpace.MatchString(t.Text) && !anchoredComment.MatchString(t.Text) {
			return
		}
		c.pos++
	}
}

func (c *compiler) atEnd() bool {
	c.skipTrivia()
	return c.pos >= len(c.elements)
}

func (c *compiler) peekToken() (lexer.Token, bool) {
	c.skipTrivia()
	if c.pos < len(c.elements) {
		t, ok := c.elements[c.pos].(lexer.Token)
		return t, ok
	}
	return lexer.Token{}, false
}

func (c *compiler) peekHole() (lexer.Hole, bool) {
	c.skipTrivia()
	if c.pos < len(c.elements) {
		h, ok := c.elements[c.pos].(lexer.Hole)
		return h, ok
	}
	return 0, false
}

func (c *compiler) expect(text string) error {
	t, ok := c.peekToken()
	if !ok || t.Text != text {
		return c.errorf("expected %q but got %s", text, c.describeHere())
	}
	c.pos++
	return nil
}

func (c *compiler) describeHere() string {
	c.skipTrivia()
	if c.pos >= len(c.elements) {
		return "end of grammar"
	}
	return c.elements[c.pos].String()
}

func (c *compiler) errorf(format string, args ...interface{}) error {
	err := grammarErrorf(format, args...)
	if t, ok := c.peekToken(); ok {
		err.Pos = t.Pos
	}
	return err
}

func (c *compiler) parseGrammar() error {
	for !c.atEnd() {
		if err := c.parseProduction(); err != nil {
			return err
		}
	}
	if len(c.g.order) == 0 {
		return grammarErrorf("empty grammar")
	}
	c.g.start = c.g.rules[c.g.order[0]]
	return nil
}

func (c *compiler) parseProduction() error {
	t, ok := c.peekToken()
	if !ok || !anchoredIdent.MatchString(t.Text) {
		return c.errorf("expected production name but got %s", c.describeHere())
	}
	c.pos++
	if _, dup := c.g.rules[t.Text]; dup {
		return c.errorf("duplicate production %q", t.Text)
	}
	if err := c.expect("::="); err != nil {
		return err
	}
	body, err := c.parseBody()
	if err != nil {
		return err
	}
	if err := c.expect(";"); err != nil {
		return err
	}
	rule := &compiledRule{id: c.newID(), ruleName: t.Text, body: body}
	c.g.rules[t.Text] = rule
	c.g.order = append(c.g.order, t.Text)
	return nil
}

func (c *compiler) parseBody() (node, error) {
	alts := choice{}
	for {
		alt, err := c.parseSeq()
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
		if t, ok := c.peekToken(); !ok || t.Text != "/" {
			break
		}
		c.pos++
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return alts, nil
}

func (c *compiler) parseSeq() (node, error) {
	q := &seq{}
	for {
		if h, ok := c.peekHole(); ok {
			c.pos++
			if c.seqEnds() {
				action, err := c.bindAction(int(h))
				if err != nil {
					return nil, err
				}
				q.action = action
				break
			}
			// An inner hole is an input placeholder, matched like the
			// HOLE terminal.
			q.atoms = append(q.atoms, &refNode{label: "HOLE", m: holeRule})
			continue
		}
		atom, err := c.parseAtom()
		if err != nil {
			return nil, err
		}
		if atom == nil {
			break
		}
		q.atoms = append(q.atoms, atom)
	}
	return q, nil
}

// seqEnds reports whether the cursor sits at the end of an alternative.
func (c *compiler) seqEnds() bool {
	if c.atEnd() {
		return true
	}
	if t, ok := c.peekToken(); ok {
		return t.Text == ";" || t.Text == "/" || t.Text == ")"
	}
	return false
}

func (c *compiler) bindAction(hole int) (Action, error) {
	if hole >= len(c.holes) {
		return nil, grammarErrorf("internal: hole %d out of range", hole)
	}
	action, ok := asAction(c.holes[hole])
	if !ok {
		return nil, grammarErrorf("hole %d: semantic action must be an Action, got %T", hole, c.holes[hole])
	}
	return action, nil
}

func (c *compiler) parseAtom() (node, error) {
	prim, err := c.parsePrim()
	if prim == nil || err != nil {
		return prim, err
	}
	t, ok := c.peekToken()
	if !ok {
		return prim, nil
	}
	switch t.Text {
	case "*":
		c.pos++
		return &rep{atom: prim}, nil
	case "+":
		c.pos++
		return &rep{atom: prim, min: 1}, nil
	case "?":
		c.pos++
		return &opt{atom: prim}, nil
	case "**", "++":
		c.pos++
		sep, err := c.parsePrim()
		if err != nil {
			return nil, err
		}
		if sep == nil {
			return nil, c.errorf("expected separator after %q but got %s", t.Text, c.describeHere())
		}
		min := 0
		if t.Text == "++" {
			min = 1
		}
		return &sepRep{atom: prim, sep: sep, min: min}, nil
	}
	return prim, nil
}

func (c *compiler) parsePrim() (node, error) {
	t, ok := c.peekToken()
	if !ok {
		return nil, nil
	}
	switch {
	case anchoredString.MatchString(t.Text):
		c.pos++
		text, err := unquote(t.Text)
		if err != nil {
			return nil, c.errorf("bad literal %s: %s", t, err)
		}
		return &refNode{label: strconv.Quote(text), m: c.internLiteral(text)}, nil
	case anchoredIdent.MatchString(t.Text):
		c.pos++
		ref := &refNode{label: t.Text, m: terminalRules[t.Text]}
		if ref.m == nil {
			c.refs = append(c.refs, ref)
		}
		return ref, nil
	case t.Text == "(":
		c.pos++
		body, err := c.parseBody()
		if err != nil {
			return nil, err
		}
		if err := c.expect(")"); err != nil {
			return nil, err
		}
		return body, nil
	}
	return nil, nil
}

// internLiteral returns the one matcher for a literal, registering
// identifier-shaped literals as reserved keywords.
func (c *compiler) internLiteral(text string) *litMatcher {
	if m, ok := c.literals[text]; ok {
		return m
	}
	m := &litMatcher{id: c.newID(), text: text}
	c.literals[text] = m
	if anchoredIdent.MatchString(text) {
		c.g.keywords.Add(text)
	}
	return m
}

// resolve binds forward references to their productions.
func (c *compiler) resolve() error {
	for _, ref := range c.refs {
		rule, ok := c.g.rules[ref.label]
		if !ok {
			return grammarErrorf("Rule missing: %s", ref.label)
		}
		ref.m = rule
	}
	return nil
}

// unquote decodes a double-quoted literal.
func unquote(s string) (string, error) {
	quote := s[0]
	s = s[1 : len(s)-1]
	out := ""
	for s != "" {
		value, _, tail, err := strconv.UnquoteChar(s, quote)
		if err != nil {
			return "", err
		}
		s = tail
		out += string(value)
	}
	return out, nil
}
