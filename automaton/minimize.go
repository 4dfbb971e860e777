package automaton

import (
	"sort"

	"github.com/coregx/gridmatch/internal/idmap"
	"github.com/coregx/gridmatch/internal/partition"
)

// minimize runs Hopcroft's algorithm (spec §4.5) over d, returning a
// quotient DFA with the minimum possible number of states. If d is
// already minimal, the partition-reaches-n-blocks shortcut (spec §9)
// returns d unchanged: right after the initial accept split (before any
// inverse transitions are built) when that split alone separates every
// state, otherwise as soon as a worklist refinement reaches n blocks.
func minimize(d *rawDFA, acceptCount int) *rawDFA {
	n := len(d.states)
	p := partition.New(n)

	// Initial split: separate states by their exact accept-ID membership
	// vector, one Refine pass per accept-ID. Two states landing in the
	// same final block after all acceptCount passes share an identical
	// accept-ID set.
	for k := 0; k < acceptCount; k++ {
		var S []int
		for s := 0; s < n; s++ {
			if containsInt(d.states[s].acceptIDs, k) {
				S = append(S, s)
			}
		}
		if len(S) > 0 && len(S) < n {
			p.Refine(S)
		}
	}

	if p.NumBlocks() == n {
		return d
	}

	inv := buildInverse(d)

	for {
		block, ok := p.PollUnprocessed()
		if !ok {
			break
		}
		for c := 0; c < d.alphabetSize; c++ {
			var X []int
			for _, t := range block {
				X = append(X, inv[c][t]...)
			}
			if len(X) > 0 {
				p.Refine(X)
				if p.NumBlocks() == n {
					return d
				}
			}
		}
	}

	return buildQuotient(d, p)
}

func containsInt(xs []int, v int) bool {
	i := sort.SearchInts(xs, v)
	return i < len(xs) && xs[i] == v
}

// buildInverse computes inv[c][t] = {s : transitions[s][c] == t}. Since
// each source state has exactly one target per letter, the lists for
// distinct t are disjoint by construction, so no set X built from them
// needs deduplication.
func buildInverse(d *rawDFA) [][][]int {
	n := len(d.states)
	inv := make([][][]int, d.alphabetSize)
	for c := range inv {
		inv[c] = make([][]int, n)
	}
	for s := 0; s < n; s++ {
		for c := 0; c < d.alphabetSize; c++ {
			t := d.states[s].transitions[c]
			inv[c][t] = append(inv[c][t], s)
		}
	}
	return inv
}

// buildQuotient constructs the minimised DFA's dense table from the
// final partition. The representative of the block containing state 0
// is registered first so the new DFA's start state is 0; all transitions
// are rewritten through rep ∘ getRepresentative.
func buildQuotient(d *rawDFA, p *partition.Partition) *rawDFA {
	n := len(d.states)
	reps := idmap.NewIdentity[int]()

	rep0 := p.GetRepresentative(0)
	if id := reps.GetOrCreateID(rep0); id != 0 {
		panic("automaton: representative of block 0 did not receive new-state ID 0")
	}
	for s := 0; s < n; s++ {
		reps.GetOrCreateID(p.GetRepresentative(s))
	}

	newStates := make([]dfaState, reps.Size())
	for newID := 0; newID < reps.Size(); newID++ {
		rep := reps.GetByID(newID)
		old := d.states[rep]
		transitions := make([]int, d.alphabetSize)
		for c := 0; c < d.alphabetSize; c++ {
			targetRep := p.GetRepresentative(old.transitions[c])
			targetNewID, err := reps.GetID(targetRep)
			if err != nil {
				panic("automaton: target representative was never assigned a new-state ID")
			}
			transitions[c] = targetNewID
		}
		newStates[newID] = dfaState{
			transitions: transitions,
			acceptSetID: old.acceptSetID,
			acceptIDs:   old.acceptIDs,
		}
	}

	return &rawDFA{states: newStates, alphabetSize: d.alphabetSize, acceptSetMap: d.acceptSetMap}
}
