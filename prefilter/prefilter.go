// Package prefilter wraps an Aho-Corasick automaton over the
// wildcard-free row literals of a matcher's catalogue, giving a cheap
// check of whether a row can possibly contain any registered literal.
// matcher exposes it as PatternMatcher.MayContainRowLiteral;
// matcher.recompute does not consult it. Grounded
// on the teacher's meta/compile.go and meta/find.go, which use the same
// library (github.com/coregx/ahocorasick) as a literal-engine bypass for
// large alternations.
package prefilter

import "github.com/coregx/ahocorasick"

// RowPrefilter answers, cheaply, whether a row of alphabet-IDs could
// possibly contain any wildcard-free row literal registered with it. A
// false answer is a proof; a true answer is only a hint that the row
// DFA should actually be run.
type RowPrefilter struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a RowPrefilter from a set of wildcard-free row
// literals, each the alphabet-ID bytes of one row pattern. Returns
// (nil, false) when literals is empty, since an Aho-Corasick automaton
// over zero patterns is not a meaningful prefilter and callers should
// fall back to always running the row DFA.
func Build(literals [][]byte) (*RowPrefilter, bool) {
	if len(literals) == 0 {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		if len(lit) == 0 {
			// An empty literal matches everywhere, which makes the
			// automaton useless as a filter; the caller should not
			// hand us one (row.Width is always >= 1).
			return nil, false
		}
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &RowPrefilter{automaton: auto}, true
}

// MayContainLiteral reports whether row could contain any of the
// registered literals. Safe to call on a nil receiver, which always
// answers true (no filtering).
func (rp *RowPrefilter) MayContainLiteral(row []byte) bool {
	if rp == nil {
		return true
	}
	return rp.automaton.Find(row, 0) != nil
}
