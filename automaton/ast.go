// Package automaton compiles a small regex AST over a fixed symbol
// alphabet into a minimised, table-driven DFA, via Thompson construction,
// subset construction, and Hopcroft minimisation.
//
// The AST is a closed tagged union (spec §9: "avoid open class
// hierarchies"), modelled the way the teacher's nfa.StateKind enumerates
// a closed set of NFA node kinds (see nfa/nfa.go), but expressed as Go
// interface implementations rather than a single tagged struct, since the
// AST (unlike the compiled NFA) is a recursive tree of heterogeneous
// arity.
package automaton

import "github.com/coregx/gridmatch/internal/bitset"

// Regex is a node of the regex AST. The set of implementations is closed:
// Letters, Wildcard, Concat, Union, Star, Accept.
type Regex interface {
	isRegex()
}

// Letters matches any single symbol whose dense ID is a member of Set.
type Letters struct {
	Set *bitset.Set
}

// Wildcard matches any single symbol of the alphabet.
type Wildcard struct{}

// Concat matches its children in sequence.
type Concat struct {
	Children []Regex
}

// Union matches any one of its children.
type Union struct {
	Children []Regex
}

// Star matches zero or more repetitions of Child.
type Star struct {
	Child Regex
}

// Accept marks that, upon reaching this point with no further input
// required, the regex has matched under accept-ID Label. Label must lie
// in [0, acceptCount) as passed to Compile.
type Accept struct {
	Label int
}

func (Letters) isRegex()  {}
func (Wildcard) isRegex() {}
func (Concat) isRegex()   {}
func (Union) isRegex()    {}
func (Star) isRegex()     {}
func (Accept) isRegex()   {}

// Lit is a convenience constructor for Letters over a single alphabet-ID.
func Lit(alphabetSize, id int) Regex {
	s := bitset.New(alphabetSize)
	s.Insert(id)
	return Letters{Set: s}
}

// LitSet is a convenience constructor for Letters over a set of
// alphabet-IDs, all members of [0, alphabetSize).
func LitSet(alphabetSize int, ids ...int) Regex {
	s := bitset.New(alphabetSize)
	for _, id := range ids {
		s.Insert(id)
	}
	return Letters{Set: s}
}

// ConcatOf builds a Concat from a variadic list, collapsing the
// single-child case to the child itself the way hand-written regex
// builders usually want to. An empty list yields an empty Concat, which
// matches the empty string.
func ConcatOf(children ...Regex) Regex {
	if len(children) == 1 {
		return children[0]
	}
	return Concat{Children: children}
}

// UnionOf builds a Union from a variadic list, collapsing the
// single-child case the same way ConcatOf does. An empty list yields an
// empty Union, which matches nothing.
func UnionOf(children ...Regex) Regex {
	if len(children) == 1 {
		return children[0]
	}
	return Union{Children: children}
}
