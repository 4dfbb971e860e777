package matcher

import "github.com/coregx/gridmatch/internal/sampleset"

// State owns a Grid and the incrementally-maintained per-cell DFA
// states and per-pattern match indices that spec §3 calls
// "MatcherState". It is NOT safe for concurrent use: spec §5 models one
// thread driving grid edits and recompute to completion before the next
// edit is accepted, the same single-writer contract the teacher's
// dfa/lazy/lazy.go documents for its own per-goroutine DFA cache.
type State struct {
	matcher *PatternMatcher
	Grid    *Grid

	rowStates *stateArray
	colStates *stateArray

	matchIndices []*sampleset.Set
}

// MakeState returns a fresh State over a width x height grid, all cells
// initialised to symbol-ID 0, with every pattern match against the
// all-zero grid already materialised (spec §6: makeState).
func (m *PatternMatcher) MakeState(width, height int) (*State, error) {
	if width <= 0 || height <= 0 {
		return nil, boundsErr("MakeState", width, height)
	}
	n := width * height
	s := &State{
		matcher:      m,
		Grid:         newGrid(width, height, m.alphabet.Size()),
		rowStates:    newStateArray(n, m.rowDFA.NumStates()),
		colStates:    newStateArray(n, m.colDFA.NumStates()),
		matchIndices: make([]*sampleset.Set, len(m.patterns)),
	}
	for i := range s.matchIndices {
		s.matchIndices[i] = sampleset.New(n)
	}
	s.Grid.onChange = s.recompute
	s.recompute(0, 0, width, height)
	return s, nil
}

// CountMatches returns the number of grid positions currently matching
// patternID, in O(1).
func (s *State) CountMatches(patternID int) (int, error) {
	if patternID < 0 || patternID >= len(s.matchIndices) {
		return 0, boundsErr("CountMatches", patternID)
	}
	return s.matchIndices[patternID].Size(), nil
}

// GetRandomMatch returns a uniformly random current match position of
// patternID, or ok=false if there are none, in O(1).
func (s *State) GetRandomMatch(patternID int) (x, y int, ok bool, err error) {
	if patternID < 0 || patternID >= len(s.matchIndices) {
		return 0, 0, false, boundsErr("GetRandomMatch", patternID)
	}
	idx, ok := s.matchIndices[patternID].Sample()
	if !ok {
		return 0, 0, false, nil
	}
	w := s.Grid.width
	return idx % w, idx / w, true, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// recompute implements spec §4.7's two-phase incremental update over
// the rectangle [startX, endX) x [startY, endY), clamped into the
// grid's bounds. It is the sole mutator of rowStates, colStates, and
// matchIndices.
func (s *State) recompute(startX, startY, endX, endY int) {
	w, h := s.Grid.width, s.Grid.height
	startX, endX = clampInt(startX, 0, w), clampInt(endX, 0, w)
	startY, endY = clampInt(startY, 0, h), clampInt(endY, 0, h)
	if startX > endX {
		startX, endX = endX, startX
	}
	if startY > endY {
		startY, endY = endY, startY
	}

	rowDFA := s.matcher.rowDFA
	colDFA := s.matcher.colDFA

	// Phase 1: rowStates, right-to-left per affected row.
	minChangedX := endX
	for y := startY; y < endY; y++ {
		state := 0
		if endX != w {
			state = s.rowStates.Get(endX + y*w)
		}
		for x := endX - 1; x >= 0; x-- {
			letter := s.Grid.cells.Get(x + y*w)
			next, err := rowDFA.Step(state, letter)
			if err != nil {
				panic(err)
			}
			state = next
			idx := x + y*w
			if s.rowStates.Get(idx) != state {
				s.rowStates.Set(idx, state)
				if x < minChangedX {
					minChangedX = x
				}
			} else if x < startX {
				break
			}
		}
	}

	// Phase 2: colStates and match indices, bottom-to-top per column
	// touched by a rowStates change.
	for x := minChangedX; x < endX; x++ {
		state := 0
		if endY != h {
			state = s.colStates.Get(x + endY*w)
		}
		for y := endY - 1; y >= 0; y-- {
			idx := x + y*w
			letter := rowDFA.AcceptSetID(s.rowStates.Get(idx))
			next, err := colDFA.Step(state, letter)
			if err != nil {
				panic(err)
			}
			state = next
			old := s.colStates.Get(idx)
			if state != old {
				s.colStates.Set(idx, state)
				oldSet, newSet := colDFA.AcceptSetID(old), colDFA.AcceptSetID(state)
				for _, k := range s.matcher.diffOf(oldSet, newSet) {
					s.matchIndices[k].Delete(idx)
				}
				for _, k := range s.matcher.diffOf(newSet, oldSet) {
					s.matchIndices[k].Add(idx)
				}
			} else if y < startY {
				break
			}
		}
	}
}
