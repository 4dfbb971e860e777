package automaton

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/gridmatch/internal/bitset"
	"github.com/coregx/gridmatch/internal/idmap"
)

// dfaState is one row of the table-driven DFA: a dense transition per
// alphabet letter, the dense ID of this state's accept-set, and the
// materialised sorted list of accept-IDs (spec §3: DFA data model).
type dfaState struct {
	transitions []int
	acceptSetID int
	acceptIDs   []int
}

// DFA is an immutable, minimised, table-driven deterministic automaton.
// State 0 is always the start state.
type DFA struct {
	states       []dfaState
	alphabetSize int
	acceptSetMap *idmap.Map[[]int, string]
}

// NumStates returns the number of states in the minimised table.
func (d *DFA) NumStates() int { return len(d.states) }

// AlphabetSize returns the input alphabet size this DFA was compiled for.
func (d *DFA) AlphabetSize() int { return d.alphabetSize }

// Step returns the state reached from state on letter. Per spec §4.7's
// step-operation contract, both arguments are validated; out-of-range
// values fail with ErrInvalidState rather than silently clamping.
func (d *DFA) Step(state, letter int) (int, error) {
	if state < 0 || state >= len(d.states) || letter < 0 || letter >= d.alphabetSize {
		return 0, &StepError{State: state, Letter: letter}
	}
	return d.states[state].transitions[letter], nil
}

// AcceptSetID returns the dense ID of the accept-set associated with
// state.
func (d *DFA) AcceptSetID(state int) int { return d.states[state].acceptSetID }

// AcceptIDs returns the sorted list of accept-IDs associated with state.
// The returned slice must not be mutated.
func (d *DFA) AcceptIDs(state int) []int { return d.states[state].acceptIDs }

// Accepts reports whether state's accept-set contains label.
func (d *DFA) Accepts(state, label int) bool {
	ids := d.states[state].acceptIDs
	i := sort.SearchInts(ids, label)
	return i < len(ids) && ids[i] == label
}

// AcceptSetMapSize returns the number of distinct accept-sets observed
// across the DFA's states — the size of the "column alphabet" when this
// DFA is used as a row matcher (spec §4.6).
func (d *DFA) AcceptSetMapSize() int { return d.acceptSetMap.Size() }

// AcceptSetByID returns the sorted accept-ID list registered under a
// given accept-set ID.
func (d *DFA) AcceptSetByID(id int) []int { return d.acceptSetMap.GetByID(id) }

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states=%d, alphabet=%d, acceptSets=%d}", len(d.states), d.alphabetSize, d.acceptSetMap.Size())
}

func canonicalAcceptKey(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func sortedDistinct(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	out := append([]int(nil), ids...)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

// rawDFA is the mutable intermediate representation shared by subset
// construction and Hopcroft minimisation, before it is frozen into a
// public DFA.
type rawDFA struct {
	states       []dfaState
	alphabetSize int
	acceptSetMap *idmap.Map[[]int, string]
}

// Compile performs the three-stage regex-to-DFA pipeline described in
// spec §4.5: Thompson construction, subset construction, and Hopcroft
// minimisation. acceptCount must equal the number of distinct accept-IDs
// used by Accept nodes within r.
func Compile(alphabetSize, acceptCount int, r Regex) (*DFA, error) {
	if alphabetSize <= 0 {
		return nil, fmt.Errorf("automaton: alphabetSize must be positive, got %d", alphabetSize)
	}
	if acceptCount < 0 {
		return nil, fmt.Errorf("automaton: acceptCount must be non-negative, got %d", acceptCount)
	}
	nfa := buildNFA(alphabetSize, acceptCount, r)
	raw := subsetConstruct(nfa)
	min := minimize(raw, acceptCount)
	return &DFA{states: min.states, alphabetSize: min.alphabetSize, acceptSetMap: min.acceptSetMap}, nil
}

// subsetConstruct performs powerset construction over nfa, producing a
// (not yet minimised) dense DFA table. Discovery order guarantees the
// start state receives ID 0.
func subsetConstruct(nfa *NFA) *rawDFA {
	stateSets := idmap.New(func(s *bitset.Set) string { return s.Key() })
	acceptSetMap := idmap.New(func(ids []int) string { return canonicalAcceptKey(ids) })

	startClosure := epsilonClosure(nfa, []int{nfa.start})
	startID := stateSets.GetOrCreateID(startClosure)
	if startID != 0 {
		panic("automaton: start state did not receive ID 0")
	}

	type discovered struct {
		id  int
		set *bitset.Set
	}
	queue := []discovered{{startID, startClosure}}
	var states []dfaState

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.id != len(states) {
			panic("automaton: subset construction discovery order invariant violated")
		}

		elems := cur.set.Elements()
		var acceptIDs []int
		for _, n := range elems {
			acceptIDs = append(acceptIDs, nfa.nodes[n].acceptSet...)
		}
		acceptIDs = sortedDistinct(acceptIDs)
		acceptSetID := acceptSetMap.GetOrCreateID(acceptIDs)

		transitions := make([]int, nfa.alphabetSize)
		for c := 0; c < nfa.alphabetSize; c++ {
			var nextNodes []int
			for _, n := range elems {
				node := &nfa.nodes[n]
				if node.letters != nil && node.letters.Contains(c) {
					nextNodes = append(nextNodes, node.next)
				}
			}
			closure := epsilonClosure(nfa, nextNodes)

			sizeBefore := stateSets.Size()
			id := stateSets.GetOrCreateID(closure)
			transitions[c] = id
			if stateSets.Size() > sizeBefore {
				// GetOrCreateID minted a new ID: discovery order thus
				// stays strictly increasing, which is what lets us
				// process the queue in ID order above.
				queue = append(queue, discovered{id: id, set: closure})
			}
		}

		states = append(states, dfaState{transitions: transitions, acceptSetID: acceptSetID, acceptIDs: acceptIDs})
	}

	return &rawDFA{states: states, alphabetSize: nfa.alphabetSize, acceptSetMap: acceptSetMap}
}
