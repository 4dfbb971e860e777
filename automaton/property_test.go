package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteForceMatch is an independent reference implementation of
// (a|b)*c over alphabet {a=0,b=1,c=2}: true iff the string is zero or
// more 0/1s followed by exactly one 2.
func bruteForceMatch(input []int) bool {
	if len(input) == 0 {
		return false
	}
	for _, c := range input[:len(input)-1] {
		if c != 0 && c != 1 {
			return false
		}
	}
	return input[len(input)-1] == 2
}

// TestDFAEquivalenceAgainstReference (T3): for every string up to a
// bound over the alphabet, the minimised DFA agrees with an independent
// reference implementation on acceptance.
func TestDFAEquivalenceAgainstReference(t *testing.T) {
	r := ConcatOf(Star{Child: UnionOf(Lit(3, 0), Lit(3, 1))}, Lit(3, 2), Accept{Label: 0})
	d, err := Compile(3, 1, r)
	require.NoError(t, err)

	var strs [][]int
	var gen func(prefix []int, depth int)
	gen = func(prefix []int, depth int) {
		if depth == 0 {
			cp := append([]int(nil), prefix...)
			strs = append(strs, cp)
			return
		}
		for c := 0; c < 3; c++ {
			gen(append(prefix, c), depth-1)
		}
	}
	for length := 0; length <= 4; length++ {
		gen(nil, length)
	}

	for _, s := range strs {
		state := 0
		for _, c := range s {
			state, err = d.Step(state, c)
			require.NoError(t, err)
		}
		got := d.Accepts(state, 0)
		want := bruteForceMatch(s)
		require.Equal(t, want, got, "mismatch on input %v", s)
	}
}
