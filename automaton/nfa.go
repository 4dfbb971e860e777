package automaton

import "github.com/coregx/gridmatch/internal/bitset"

// nfaNode is one state of the Thompson-constructed NFA: epsilons lists
// the epsilon-successors, letters (if non-nil) is the set of alphabet-IDs
// that fire the single consuming transition to next, and acceptSet lists
// the accept-IDs reached, input-free, by being in this state.
//
// This mirrors the teacher's nfa.State sum-of-kinds design (nfa/nfa.go's
// StateByteRange/StateSplit/StateEpsilon) collapsed into one struct with
// optional fields, the way EnnnOK/matcher's `state` (lex.go/matcher.go)
// represents both consuming and splitting states in a single type.
type nfaNode struct {
	epsilons  []int
	letters   *bitset.Set
	next      int
	acceptSet []int
}

// NFA is an immutable Thompson-construction automaton over a fixed
// alphabet, with accept labels in [0, acceptCount).
type NFA struct {
	nodes        []nfaNode
	start        int
	alphabetSize int
	acceptCount  int
}

// frag is an NFA fragment under construction: start is its entry node,
// and outs is the list of dangling edges still needing a target, patched
// once the next fragment in sequence is known. This is the same
// fragment/patch technique as EnnnOK/matcher's frag/ptr/patch (matcher.go
// Post2nfa), generalised from single characters to letter sets and from
// binary union/concat to n-ary.
type frag struct {
	start int
	outs  []func(target int)
}

type builder struct {
	nodes        []nfaNode
	alphabetSize int
}

func (b *builder) newNode() int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, nfaNode{next: -1})
	return id
}

func patchAll(outs []func(target int), target int) {
	for _, p := range outs {
		p(target)
	}
}

func (b *builder) build(r Regex) frag {
	switch n := r.(type) {
	case Letters:
		id := b.newNode()
		b.nodes[id].letters = n.Set
		return frag{start: id, outs: []func(int){
			func(t int) { b.nodes[id].next = t },
		}}

	case Wildcard:
		id := b.newNode()
		b.nodes[id].letters = bitset.Full(b.alphabetSize)
		return frag{start: id, outs: []func(int){
			func(t int) { b.nodes[id].next = t },
		}}

	case Concat:
		return b.buildConcat(n.Children)

	case Union:
		id := b.newNode()
		var outs []func(int)
		for _, c := range n.Children {
			f := b.build(c)
			b.nodes[id].epsilons = append(b.nodes[id].epsilons, f.start)
			outs = append(outs, f.outs...)
		}
		return frag{start: id, outs: outs}

	case Star:
		id := b.newNode()
		f := b.build(n.Child)
		b.nodes[id].epsilons = append(b.nodes[id].epsilons, f.start)
		patchAll(f.outs, id) // back-edge: child loops back into the split node
		return frag{start: id, outs: []func(int){
			func(t int) { b.nodes[id].epsilons = append(b.nodes[id].epsilons, t) }, // skip-edge
		}}

	case Accept:
		// See DESIGN.md: one small epsilon-passthrough node per Accept
		// site, carrying its own label, rather than decorating whatever
		// node a predecessor's dangling outs happen to resolve to.
		id := b.newNode()
		b.nodes[id].acceptSet = append(b.nodes[id].acceptSet, n.Label)
		return frag{start: id, outs: []func(int){
			func(t int) { b.nodes[id].epsilons = append(b.nodes[id].epsilons, t) },
		}}
	}
	panic("automaton: unknown Regex node type")
}

func (b *builder) buildConcat(children []Regex) frag {
	if len(children) == 0 {
		// Empty concat: an epsilon passthrough that matches nothing on
		// its own and defers entirely to whatever follows.
		id := b.newNode()
		return frag{start: id, outs: []func(int){
			func(t int) { b.nodes[id].epsilons = append(b.nodes[id].epsilons, t) },
		}}
	}
	cur := b.build(children[0])
	for _, c := range children[1:] {
		next := b.build(c)
		patchAll(cur.outs, next.start)
		cur = frag{start: cur.start, outs: next.outs}
	}
	return cur
}

// buildNFA runs Thompson construction over r, producing a complete NFA
// with accept labels in [0, acceptCount).
func buildNFA(alphabetSize, acceptCount int, r Regex) *NFA {
	b := &builder{alphabetSize: alphabetSize}
	f := b.build(r)
	done := b.newNode() // terminal sink: no outgoing edges of its own
	patchAll(f.outs, done)
	return &NFA{
		nodes:        b.nodes,
		start:        f.start,
		alphabetSize: alphabetSize,
		acceptCount:  acceptCount,
	}
}

// epsilonClosure returns the set of node IDs reachable from seed via zero
// or more epsilon transitions (including seed itself), as a canonical
// bitset.Set keyed over the NFA's node count.
func epsilonClosure(nfa *NFA, seed []int) *bitset.Set {
	visited := bitset.New(len(nfa.nodes))
	stack := append([]int(nil), seed...)
	for _, s := range seed {
		visited.Insert(s)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range nfa.nodes[n].epsilons {
			if !visited.Contains(e) {
				visited.Insert(e)
				stack = append(stack, e)
			}
		}
	}
	return visited
}
