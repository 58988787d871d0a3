package quasiparse

import "io"

// A CompileOption modifies a Grammar at compile time.
type CompileOption func(g *Grammar)

// Named sets the grammar's name, as returned by Grammar.Name. Traces do not
// show it.
func Named(name string) CompileOption {
	return func(g *Grammar) { g.name = name }
}

// A ParseOption modifies the behaviour of a single parse invocation.
type ParseOption func(s *Scanner)

// Trace emits per-rule call traces to w during the parse, followed by a dump
// of the memo and counters. It has no behavioural effect.
func Trace(w io.Writer) ParseOption {
	return func(s *Scanner) { s.trace = w }
}

// NoMemo disables result reuse: every rule evaluation misses the memo. The
// parse result is unchanged; only the counters differ. Probes are still
// installed, so left recursion is still detected. This is a debugging aid.
func NoMemo() ParseOption {
	return func(s *Scanner) { s.noMemo = true }
}

// CollectStats copies the parse's hit/miss counters into out when the parse
// finishes.
func CollectStats(out *ParseStats) ParseOption {
	return func(s *Scanner) { s.statsOut = out }
}
