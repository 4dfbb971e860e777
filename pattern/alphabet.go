// Package pattern implements the rectangular pattern raster of spec §3
// ("Pattern"): a fixed-size grid of symbol-IDs and wildcards, its
// write-plan and canonical key, parsing from the "/"-row, "*"-wildcard
// string form, and the dihedral symmetry operators spec.md assigns to
// "the interactive demo driver" but which belong, as pure data-type
// operations, on Pattern itself (see SPEC_FULL.md's SUPPLEMENTED
// FEATURES).
package pattern

import (
	"errors"
	"fmt"

	"github.com/coregx/gridmatch/internal/idmap"
)

// ErrUnknownSymbol is returned when a byte is not a member of an
// Alphabet.
var ErrUnknownSymbol = errors.New("pattern: unknown symbol")

// Alphabet is a fixed, ordered, pre-declared collection of distinguishable
// symbols, each carrying a dense ID in [0, Size()). Grounded on
// internal/idmap's bijection, the same way the teacher's nfa.ByteClasses
// reduces a byte domain to dense equivalence-class IDs.
type Alphabet struct {
	ids *idmap.Map[byte, byte]
}

// NewAlphabet builds an Alphabet from an ordered sequence of distinct
// symbol bytes; the i-th distinct byte receives dense ID i.
func NewAlphabet(symbols string) *Alphabet {
	ids := idmap.NewIdentity[byte]()
	for i := 0; i < len(symbols); i++ {
		ids.GetOrCreateID(symbols[i])
	}
	return &Alphabet{ids: ids}
}

// Size returns the number of distinct symbols.
func (a *Alphabet) Size() int { return a.ids.Size() }

// ID returns sym's dense ID, or ErrUnknownSymbol if sym was not declared.
func (a *Alphabet) ID(sym byte) (int, error) {
	id, err := a.ids.GetID(sym)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	return id, nil
}

// Symbol returns the byte registered under id.
func (a *Alphabet) Symbol(id int) byte { return a.ids.GetByID(id) }
