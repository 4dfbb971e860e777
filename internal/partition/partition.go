// Package partition implements the partition-refinement data structure
// Hopcroft's DFA minimisation algorithm is built on: a partition of
// {0..n-1} into contiguous blocks, with a worklist of blocks awaiting
// processing and a Refine operation that splits blocks by intersection
// with an arbitrary set in time linear in that set's size.
//
// No pack repository implements this structure (the teacher's DFA is
// never minimised, only lazily determinized); it is built directly from
// the algorithm description, in the dense-array, no-interfaces style the
// teacher uses throughout its own low-level structures (internal/sparse,
// nfa/alphabet.go).
package partition

// block is a contiguous range [start, end) of arr belonging to one
// partition class.
type block struct {
	start, end int
	inWorklist bool
	sibling    *block // set only transiently, during a single Refine call
}

func (b *block) len() int { return b.end - b.start }

// Partition maintains a partition of {0..n-1}.
type Partition struct {
	arr     []int   // permutation of 0..n-1
	indices []int   // inverse of arr: indices[arr[i]] == i
	blockOf []*block

	unprocessed []*block // stack; may contain stale (inWorklist==false) entries
	numBlocks   int
}

// New creates a Partition of {0..n-1} as a single block, already queued
// on the worklist (nothing distinguishes any two elements yet, so the
// first refinement pass must be able to examine the whole set).
func New(n int) *Partition {
	p := &Partition{
		arr:     make([]int, n),
		indices: make([]int, n),
		blockOf: make([]*block, n),
	}
	for i := 0; i < n; i++ {
		p.arr[i] = i
		p.indices[i] = i
	}
	if n > 0 {
		b := &block{start: 0, end: n, inWorklist: true}
		for i := 0; i < n; i++ {
			p.blockOf[i] = b
		}
		p.unprocessed = append(p.unprocessed, b)
		p.numBlocks = 1
	}
	return p
}

// NumBlocks returns the number of live (non-empty) blocks in the current
// partition.
func (p *Partition) NumBlocks() int {
	return p.numBlocks
}

func (p *Partition) swap(i, j int) {
	xi, xj := p.arr[i], p.arr[j]
	p.arr[i], p.arr[j] = xj, xi
	p.indices[xi], p.indices[xj] = j, i
}

func (p *Partition) push(b *block) {
	b.inWorklist = true
	p.unprocessed = append(p.unprocessed, b)
}

// Refine splits every block that has a nonempty, non-full intersection
// with S into two blocks: the elements of S and the rest. Cost is
// O(|S|).
func (p *Partition) Refine(S []int) {
	var touched []*block

	for _, x := range S {
		b := p.blockOf[x]
		if b.sibling == nil {
			sib := &block{start: b.end, end: b.end, inWorklist: b.inWorklist}
			b.sibling = sib
			sib.sibling = b
			touched = append(touched, b)
			if sib.inWorklist {
				p.unprocessed = append(p.unprocessed, sib)
			}
			p.numBlocks++
		}
		sib := b.sibling
		// Move x from b to sib: swap x into the slot just before sib's
		// current start, then grow sib leftward by shrinking b.
		i := p.indices[x]
		j := b.end - 1
		p.swap(i, j)
		b.end--
		sib.start--
		p.blockOf[x] = sib
	}

	for _, b := range touched {
		sib := b.sibling
		b.sibling = nil
		sib.sibling = nil

		if b.len() == 0 {
			// b was entirely absorbed into sib: b is now dead.
			p.numBlocks--
			continue
		}
		if !b.inWorklist {
			if b.len() <= sib.len() {
				p.push(b)
			} else {
				p.push(sib)
			}
		}
		// else: b was already in the worklist (so it will still examine
		// every letter); sib was queued at creation time above.
	}
}

// PollUnprocessed pops blocks off the worklist until it finds one still
// flagged inWorklist (stale entries, left behind when a block was queued
// more than once, are skipped), clears that flag, and returns a copy of
// its current elements. Returns (nil, false) if the worklist is empty.
func (p *Partition) PollUnprocessed() ([]int, bool) {
	for len(p.unprocessed) > 0 {
		last := len(p.unprocessed) - 1
		b := p.unprocessed[last]
		p.unprocessed = p.unprocessed[:last]
		if !b.inWorklist {
			continue
		}
		b.inWorklist = false
		out := make([]int, b.len())
		copy(out, p.arr[b.start:b.end])
		return out, true
	}
	return nil, false
}

// GetRepresentative returns a canonical representative of x's block: the
// element currently at the start of that block's range.
func (p *Partition) GetRepresentative(x int) int {
	b := p.blockOf[x]
	return p.arr[b.start]
}
