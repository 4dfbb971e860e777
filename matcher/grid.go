package matcher

import "github.com/coregx/gridmatch/pattern"

// Grid is the mutable W_g x H_g array of symbol-IDs a PatternMatcher
// watches (spec §3: "Grid"). It is owned by exactly one MatcherState,
// which subscribes a listener at construction to drive recompute; no
// other code should construct one directly.
type Grid struct {
	width, height int
	alphabetSize  int
	cells         *stateArray
	listeners     []func(minX, minY, maxX, maxY int)
	onChange      func(minX, minY, maxX, maxY int)
}

func newGrid(width, height, alphabetSize int) *Grid {
	return &Grid{
		width:        width,
		height:       height,
		alphabetSize: alphabetSize,
		cells:        newStateArray(width*height, alphabetSize),
	}
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// At returns the symbol-ID currently at (x, y). The coordinates are not
// checked against the grid's width and height; it panics only when
// x + y*Width() falls outside the flat cell array.
func (g *Grid) At(x, y int) int { return g.cells.Get(x + y*g.width) }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Listen registers fn to be called after every edit, with the
// rectangle [minX, maxX) x [minY, maxY) covering every changed cell.
// Per spec §9's documented listener-ordering choice, fn runs *before*
// recompute updates rowStates/colStates/matchIndices: it must not call
// MatcherState.CountMatches or GetRandomMatch, since those still
// reflect the state before this edit.
func (g *Grid) Listen(fn func(minX, minY, maxX, maxY int)) {
	g.listeners = append(g.listeners, fn)
}

func (g *Grid) notify(minX, minY, maxX, maxY int) {
	for _, fn := range g.listeners {
		fn(minX, minY, maxX, maxY)
	}
}

// Set writes value at (x, y), notifies listeners, then triggers
// recompute(x, y, x+1, y+1).
func (g *Grid) Set(x, y, value int) error {
	if !g.inBounds(x, y) {
		return boundsErr("Grid.Set", x, y)
	}
	if value < 0 || value >= g.alphabetSize {
		return boundsErr("Grid.Set value", value)
	}
	g.cells.Set(x+y*g.width, value)
	g.notify(x, y, x+1, y+1)
	g.onChange(x, y, x+1, y+1)
	return nil
}

// SetPattern writes every non-wildcard cell of p's write-plan at origin
// (x, y), requiring x+p.Width <= Width() and y+p.Height <= Height().
// Per the "always recompute the full bounding box" variant documented
// in DESIGN.md, the triggered recompute and the reported listener rect
// always cover p's entire W x H footprint, even if p is mostly
// wildcards and few cells actually changed.
func (g *Grid) SetPattern(x, y int, p *pattern.Pattern) error {
	if x < 0 || y < 0 || x+p.Width > g.width || y+p.Height > g.height {
		return boundsErr("Grid.SetPattern", x, y, p.Width, p.Height)
	}
	for _, w := range p.WritePlan {
		g.cells.Set((x+w.DX)+(y+w.DY)*g.width, w.Symbol)
	}
	g.notify(x, y, x+p.Width, y+p.Height)
	g.onChange(x, y, x+p.Width, y+p.Height)
	return nil
}
