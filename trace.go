package quasiparse

import (
	"fmt"
	"sort"

	"github.com/alecthomas/repr"
)

// finish flushes per-parse reporting: counters into statsOut, and the memo
// dump when tracing.
func (s *Scanner) finish() {
	if s.statsOut != nil {
		*s.statsOut = s.stats()
	}
	if s.trace != nil {
		s.dump()
	}
}

// dump writes the memoised successes and failures with the hit/miss totals.
func (s *Scanner) dump() {
	fmt.Fprintf(s.trace, "hits: %d, misses: %d\n", s.hits, s.misses)
	if pos, expected := s.lastFailures(); pos >= 0 {
		fmt.Fprintf(s.trace, "furthest failure @%d expecting %v\n", pos, expected)
	}
	positions := make([]int, 0, len(s.memo))
	for pos := range s.memo {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		inner := s.memo[pos]
		ids := make([]int, 0, len(inner))
		for id := range inner {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			e := inner[id]
			if e == probe {
				continue
			}
			if e.value == FAIL {
				fmt.Fprintf(s.trace, "@%d rule#%d -> @%d FAIL\n", pos, id, e.pos)
			} else {
				fmt.Fprintf(s.trace, "@%d rule#%d -> @%d %s\n", pos, id, e.pos, repr.String(e.value))
			}
		}
	}
}
