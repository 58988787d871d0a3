package quasiparse

import (
	"fmt"
	"regexp"
	"strconv"

	"bitbucket.org/creachadair/stringset"
)

// A matcher is anything the substrate can run at a stream position: a
// compiled production, a literal token, or a terminal pattern. Every matcher
// carries a small integer identity used as the inner memo key.
type matcher interface {
	matcherID() int
	name() string
	match(s *Scanner, pos int) (int, interface{}, error)
}

// expecter is implemented by terminal matchers that name themselves usefully
// in diagnostics. Procedure rules are deliberately excluded: their names mean
// nothing to the user of a grammar.
type expecter interface {
	expectedName() string
}

// Identities of the built-in terminal rules. Grammar-compiled matchers are
// numbered from numBuiltins up.
const (
	idComment = iota
	idNumber
	idString
	idIdent
	idHole
	idEOF
	numBuiltins
)

// litMatcher consumes a token whose text equals the literal.
type litMatcher struct {
	id   int
	text string
}

func (m *litMatcher) matcherID() int       { return m.id }
func (m *litMatcher) name() string         { return strconv.Quote(m.text) }
func (m *litMatcher) expectedName() string { return strconv.Quote(m.text) }

func (m *litMatcher) match(s *Scanner, pos int) (int, interface{}, error) {
	return s.eatText(pos, m.text)
}

// pattMatcher consumes a token whose text fully matches an anchored pattern.
type pattMatcher struct {
	id    int
	label string
	re    *regexp.Regexp
}

func (m *pattMatcher) matcherID() int       { return m.id }
func (m *pattMatcher) name() string         { return m.label }
func (m *pattMatcher) expectedName() string { return m.label }

func (m *pattMatcher) match(s *Scanner, pos int) (int, interface{}, error) {
	return s.eatPattern(pos, m.re)
}

// procMatcher is a built-in procedural rule on the Scanner.
type procMatcher struct {
	id    int
	label string
	fn    func(*Scanner, int) (int, interface{}, error)
}

func (m *procMatcher) matcherID() int { return m.id }
func (m *procMatcher) name() string   { return m.label }

func (m *procMatcher) match(s *Scanner, pos int) (int, interface{}, error) {
	return m.fn(s, pos)
}

var (
	commentRule = &procMatcher{id: idComment, label: "COMMENT", fn: (*Scanner).ruleComment}
	numberRule  = &pattMatcher{id: idNumber, label: "NUMBER", re: anchoredNumber}
	stringRule  = &pattMatcher{id: idString, label: "STRING", re: anchoredString}
	identRule   = &procMatcher{id: idIdent, label: "IDENT", fn: (*Scanner).ruleIdent}
	holeRule    = &procMatcher{id: idHole, label: "HOLE", fn: (*Scanner).ruleHole}
	eofRule     = &procMatcher{id: idEOF, label: "EOF", fn: (*Scanner).ruleEOF}
)

// terminalRules maps the rule names a grammar may reference without defining.
var terminalRules = map[string]matcher{
	"NUMBER": numberRule,
	"STRING": stringRule,
	"IDENT":  identRule,
	"HOLE":   holeRule,
	"EOF":    eofRule,
}

// memoEntry is one memoised outcome. probe marks an evaluation still in
// flight; re-entering it means left recursion.
type memoEntry struct {
	pos   int
	value interface{}
}

var probe = &memoEntry{value: leftRecur}

// ParseStats are the per-parse memo counters.
type ParseStats struct {
	Hits   int
	Misses int
}

// run evaluates a matcher at a stream position through the memo table.
//
// The first evaluation installs a probe, invokes the matcher and stores the
// outcome; later evaluations at the same position return the stored outcome.
// Re-entering a probe raises a left-recursion error: this engine uses the
// simple PEG policy and does not support left-recursive grammars.
func (s *Scanner) run(m matcher, pos int) (int, interface{}, error) {
	inner, ok := s.memo[pos]
	if !ok {
		inner = map[int]*memoEntry{}
		s.memo[pos] = inner
	}
	if e, ok := inner[m.matcherID()]; ok {
		if e == probe {
			return pos, nil, grammarErrorf("Left recursion on rule: %s", m.name())
		}
		s.hits++
		s.traceResult(m, pos, e.pos, e.value, true)
		return e.pos, e.value, nil
	}
	inner[m.matcherID()] = probe
	s.misses++
	s.traceCall(m, pos)
	newPos, value, err := m.match(s, pos)
	if err != nil {
		delete(inner, m.matcherID())
		return pos, nil, err
	}
	if s.noMemo {
		delete(inner, m.matcherID())
	} else {
		inner[m.matcherID()] = &memoEntry{pos: newPos, value: value}
	}
	if value == FAIL {
		label := ""
		if e, ok := m.(expecter); ok {
			label = e.expectedName()
		}
		s.recordFailure(newPos, label)
	}
	s.traceResult(m, pos, newPos, value, false)
	return newPos, value, nil
}

// recordFailure updates the furthest-failure tracker. Every failure bumps the
// furthest position; only named terminals contribute to the expected set.
func (s *Scanner) recordFailure(pos int, label string) {
	if pos > s.furthest {
		s.furthest = pos
		s.expected = stringset.New()
	}
	if pos == s.furthest && label != "" {
		s.expected.Add(label)
	}
}

// lastFailures reports the furthest position at which any rule failed,
// together with the terminal patterns expected there.
func (s *Scanner) lastFailures() (int, []string) {
	return s.furthest, s.expected.Elements()
}

func (s *Scanner) stats() ParseStats {
	return ParseStats{Hits: s.hits, Misses: s.misses}
}

func (s *Scanner) traceCall(m matcher, pos int) {
	if s.trace == nil {
		return
	}
	fmt.Fprintf(s.trace, "%*srun %s @%d\n", s.depth*2, "", m.name(), pos)
	s.depth++
}

func (s *Scanner) traceResult(m matcher, pos, newPos int, value interface{}, hit bool) {
	if s.trace == nil {
		return
	}
	if !hit {
		s.depth--
	}
	state := "miss"
	if hit {
		state = "hit"
	}
	outcome := "ok"
	if value == FAIL {
		outcome = "FAIL"
	}
	fmt.Fprintf(s.trace, "%*s%s %s @%d -> @%d %s\n", s.depth*2, "", state, m.name(), pos, newPos, outcome)
}
