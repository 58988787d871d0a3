package quasiparse

// A sentinel is a reference-unique result marker. Sentinels are compared by
// identity, never by value.
type sentinel struct{ label string }

func (s *sentinel) String() string { return s.label }

var (
	// FAIL is the result of a rule that did not match. Within rule
	// execution failures are values, not errors; they propagate through
	// ordered choice and sequencing.
	FAIL interface{} = &sentinel{"FAIL"}

	// EOF is the value produced by the EOF rule at the end of the stream.
	EOF interface{} = &sentinel{"EOF"}

	// leftRecur is the probe installed in the memo while a rule is being
	// evaluated at a position. Finding it on re-entry means the grammar is
	// left recursive.
	leftRecur interface{} = &sentinel{"LEFT_RECUR"}
)

// An Action is a semantic action attached to one alternative of a
// production. It receives the positional results of the sequence atoms:
// literals yield their text, terminals their lexeme, holes their index,
// repetitions a []interface{}, and nonterminals whatever their own action
// produced.
type Action func(values ...interface{}) interface{}

// A Processor is a curried post-processor: a top-level action may return one,
// in which case the parser tag applies it to the template's hole values
// before returning.
type Processor func(holes ...interface{}) interface{}

func asAction(v interface{}) (Action, bool) {
	switch a := v.(type) {
	case Action:
		return a, true
	case func(values ...interface{}) interface{}:
		return Action(a), true
	}
	return nil, false
}
