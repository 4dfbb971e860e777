package matcher

import (
	"fmt"

	"github.com/coregx/gridmatch/automaton"
	"github.com/coregx/gridmatch/internal/idmap"
	"github.com/coregx/gridmatch/pattern"
	"github.com/coregx/gridmatch/prefilter"
)

// PatternMatcher compiles a fixed pattern catalogue into the two-stage
// row/column DFA pair of spec §4.6. It is immutable once built and safe
// to share by reference across many MatcherState instances (spec §5).
type PatternMatcher struct {
	alphabet *pattern.Alphabet
	patterns []*pattern.Pattern

	rowDFA *automaton.DFA
	colDFA *automaton.DFA

	// diff[p + K*q] = colDFA accept-set p's accept-IDs minus q's,
	// sorted. K = colDFA.AcceptSetMapSize(). Indexed as spec §4.6 step
	// 7 describes.
	diff [][]int
	k    int

	prefilter *prefilter.RowPrefilter
}

// PatternCount returns the number of patterns this matcher was built
// from; pattern-IDs passed to State methods lie in [0, PatternCount()).
func (m *PatternMatcher) PatternCount() int { return len(m.patterns) }

// Alphabet returns the alphabet this matcher was compiled against.
func (m *PatternMatcher) Alphabet() *pattern.Alphabet { return m.alphabet }

// Pattern returns the pattern registered under patternID.
func (m *PatternMatcher) Pattern(patternID int) *pattern.Pattern { return m.patterns[patternID] }

// HasLiteralPrefilter reports whether this matcher built a row-literal
// Aho-Corasick prefilter (only possible when every row pattern in the
// catalogue is wildcard-free).
func (m *PatternMatcher) HasLiteralPrefilter() bool { return m.prefilter != nil }

// MayContainRowLiteral reports whether rowBytes (alphabet-ID bytes of
// one grid row) could contain any wildcard-free row literal from the
// catalogue. Always true if no prefilter was built.
//
// This is exposed as a standalone convenience, not wired into
// recompute's hot loop: recompute must store an exact rowDFA state at
// every cell regardless of whether that state happens to be accepting,
// since future incremental edits resynchronise from those exact stored
// states (spec §4.7's Phase 1). A prefilter can prove "no row literal
// occurs here" but cannot shortcut which non-accepting state to store,
// so it buys nothing inside the per-cell scan itself.
func (m *PatternMatcher) MayContainRowLiteral(rowBytes []byte) bool {
	return m.prefilter.MayContainLiteral(rowBytes)
}

// diffOf implements spec §4.6 step 7's diff[P][Q] = P \ Q lookup.
func (m *PatternMatcher) diffOf(p, q int) []int {
	if p == q {
		return nil
	}
	return m.diff[p+m.k*q]
}

// NewPatternMatcher compiles alphabet and patterns with DefaultConfig().
// patterns must already be canonical-key-deduplicated (spec §6); this
// is a precondition on the caller, not validated here — catalogue.Load
// deduplicates before returning.
func NewPatternMatcher(alphabet *pattern.Alphabet, patterns []*pattern.Pattern) (*PatternMatcher, error) {
	return NewPatternMatcherWithConfig(alphabet, patterns, DefaultConfig())
}

// NewPatternMatcherWithConfig is NewPatternMatcher with explicit Config.
func NewPatternMatcherWithConfig(alphabet *pattern.Alphabet, patterns []*pattern.Pattern, cfg Config) (*PatternMatcher, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("matcher: patterns must be non-empty")
	}

	// Step 1: collect distinct row-patterns across the whole catalogue,
	// keyed by canonical Pattern key, and remember each pattern's
	// sequence of row-IDs.
	rowIDs := idmap.New(func(r *pattern.Pattern) string { return r.Key() })
	patternRowIDs := make([][]int, len(patterns))
	hasWildcardRow := false
	var literals [][]byte
	seenRow := make(map[string]bool)
	for pi, p := range patterns {
		rows := p.Rows()
		ids := make([]int, len(rows))
		for ri, r := range rows {
			id := rowIDs.GetOrCreateID(r)
			ids[ri] = id
			if !seenRow[r.Key()] {
				seenRow[r.Key()] = true
				if containsWildcard(r) {
					hasWildcardRow = true
				} else {
					literals = append(literals, rowLiteralBytes(r))
				}
			}
		}
		patternRowIDs[pi] = ids
	}

	// Step 2-3: build and compile the row regex over alphabet A.
	rowBranches := make([]automaton.Regex, rowIDs.Size())
	rowIDs.Each(func(id int, r *pattern.Pattern) {
		atoms := reversedRowAtoms(r, alphabet.Size())
		rowBranches[id] = automaton.ConcatOf(append(atoms, automaton.Accept{Label: id})...)
	})
	rowRegex := automaton.ConcatOf(
		automaton.Star{Child: automaton.Wildcard{}},
		automaton.UnionOf(rowBranches...),
	)
	rowDFA, err := automaton.Compile(alphabet.Size(), rowIDs.Size(), rowRegex)
	if err != nil {
		return nil, fmt.Errorf("matcher: compiling row DFA: %w", err)
	}

	// Step 4: invert rowDFA's accept-set table into acceptingSets[r].
	colAlphabetSize := rowDFA.AcceptSetMapSize()
	acceptingSets := make([][]int, rowIDs.Size())
	for k := 0; k < colAlphabetSize; k++ {
		for _, r := range rowDFA.AcceptSetByID(k) {
			acceptingSets[r] = append(acceptingSets[r], k)
		}
	}

	// Step 5-6: build and compile the column regex over the column
	// alphabet (rowDFA's accept-set IDs).
	colBranches := make([]automaton.Regex, len(patterns))
	for pi := range patterns {
		ids := patternRowIDs[pi]
		atoms := make([]automaton.Regex, len(ids))
		for j, rid := range ids {
			// Reversed: row j=0 is the pattern's top row, but the
			// column DFA scans bottom-to-top, so the bottom row's
			// letter comes first.
			atoms[len(ids)-1-j] = automaton.LitSet(colAlphabetSize, acceptingSets[rid]...)
		}
		colBranches[pi] = automaton.ConcatOf(append(atoms, automaton.Accept{Label: pi})...)
	}
	colRegex := automaton.ConcatOf(
		automaton.Star{Child: automaton.Wildcard{}},
		automaton.UnionOf(colBranches...),
	)
	colDFA, err := automaton.Compile(colAlphabetSize, len(patterns), colRegex)
	if err != nil {
		return nil, fmt.Errorf("matcher: compiling column DFA: %w", err)
	}

	// Step 7: precompute diff[P][Q] for every ordered pair of distinct
	// colDFA accept-sets.
	K := colDFA.AcceptSetMapSize()
	diff := make([][]int, K*K)
	for p := 0; p < K; p++ {
		pSet := colDFA.AcceptSetByID(p)
		for q := 0; q < K; q++ {
			if p == q {
				continue
			}
			diff[p+K*q] = setMinus(pSet, colDFA.AcceptSetByID(q))
		}
	}

	m := &PatternMatcher{
		alphabet: alphabet,
		patterns: append([]*pattern.Pattern(nil), patterns...),
		rowDFA:   rowDFA,
		colDFA:   colDFA,
		diff:     diff,
		k:        K,
	}
	if cfg.UsePrefilter && !hasWildcardRow {
		if pf, ok := prefilter.Build(literals); ok {
			m.prefilter = pf
		}
	}
	return m, nil
}

func containsWildcard(row *pattern.Pattern) bool {
	for x := 0; x < row.Width; x++ {
		if row.At(x, 0) == pattern.Wildcard {
			return true
		}
	}
	return false
}

func rowLiteralBytes(row *pattern.Pattern) []byte {
	b := make([]byte, row.Width)
	for x := 0; x < row.Width; x++ {
		b[x] = byte(row.At(x, 0))
	}
	return b
}

// reversedRowAtoms returns the Letters/Wildcard atoms of row's single
// raster row, right-to-left, matching spec §4.6 step 2's requirement
// that the row regex scans backward.
func reversedRowAtoms(row *pattern.Pattern, alphabetSize int) []automaton.Regex {
	atoms := make([]automaton.Regex, row.Width)
	for x := 0; x < row.Width; x++ {
		cell := row.At(x, 0)
		var atom automaton.Regex
		if cell == pattern.Wildcard {
			atom = automaton.Wildcard{}
		} else {
			atom = automaton.Lit(alphabetSize, cell)
		}
		atoms[row.Width-1-x] = atom
	}
	return atoms
}

// setMinus returns a \ b for sorted int slices a, b.
func setMinus(a, b []int) []int {
	if len(a) == 0 {
		return nil
	}
	bs := make(map[int]bool, len(b))
	for _, v := range b {
		bs[v] = true
	}
	var out []int
	for _, v := range a {
		if !bs[v] {
			out = append(out, v)
		}
	}
	return out
}
