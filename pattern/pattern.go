package pattern

import (
	"fmt"
	"strings"
)

// Wildcard marks a pattern cell that matches any alphabet symbol and
// writes nothing on Grid.SetPattern.
const Wildcard = -1

// Write is one entry of a Pattern's write-plan: writing symbol at
// (dx, dy) relative to the pattern's origin.
type Write struct {
	DX, DY int
	Symbol int
}

// Pattern is a rectangular raster of width W and height H, in which each
// cell is either a symbol-ID or Wildcard (spec §3).
//
// Redundant representations are kept, per spec §3: the raw raster (for
// matching and rendering), a write-plan (for Grid.SetPattern), and a
// canonical key string (for deduplication and symmetry closure).
type Pattern struct {
	Width, Height int
	cells         []int // row-major, len == Width*Height

	WritePlan []Write

	// Bounding box of the non-wildcard cells. Collapses to the single
	// point (0,0) when the pattern is all-wildcard.
	MinX, MinY, MaxX, MaxY int

	key string
}

// New builds a Pattern from a row-major raster of length width*height,
// where each entry is either Wildcard or a value in [0, alphabetSize).
// Panics if len(cells) != width*height (a programming error, not a
// runtime input-validation concern — callers construct rasters
// themselves; Parse is the boundary that validates untrusted input).
func New(width, height int, cells []int) *Pattern {
	if width < 1 || height < 1 {
		panic("pattern: width and height must be >= 1")
	}
	if len(cells) != width*height {
		panic("pattern: len(cells) != width*height")
	}
	p := &Pattern{Width: width, Height: height, cells: append([]int(nil), cells...)}
	p.computeBoundingBoxAndWritePlan()
	p.key = p.computeKey()
	return p
}

func (p *Pattern) computeBoundingBoxAndWritePlan() {
	minX, minY, maxX, maxY := 0, 0, 0, 0
	any := false
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			v := p.cells[x+y*p.Width]
			if v == Wildcard {
				continue
			}
			p.WritePlan = append(p.WritePlan, Write{DX: x, DY: y, Symbol: v})
			if !any {
				minX, maxX, minY, maxY = x, x, y, y
				any = true
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	p.MinX, p.MinY, p.MaxX, p.MaxY = minX, minY, maxX, maxY
}

func (p *Pattern) computeKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d:", p.Width, p.Height)
	for _, c := range p.cells {
		if c == Wildcard {
			b.WriteByte('*')
			continue
		}
		fmt.Fprintf(&b, "%d,", c)
	}
	return b.String()
}

// Key returns the canonical byte-string key used for deduplication and
// as a map key by symmetry closure and catalogue construction.
func (p *Pattern) Key() string { return p.key }

// At returns the cell at (x, y): a symbol-ID, or Wildcard.
func (p *Pattern) At(x, y int) int { return p.cells[x+y*p.Width] }

// Row extracts row y as its own width-W, height-1 Pattern.
func (p *Pattern) Row(y int) *Pattern {
	return New(p.Width, 1, append([]int(nil), p.cells[y*p.Width:(y+1)*p.Width]...))
}

// Rows decomposes the pattern into its H constituent rows, top to
// bottom, for row-pattern collection (spec §4.6 step 1).
func (p *Pattern) Rows() []*Pattern {
	rows := make([]*Pattern, p.Height)
	for y := 0; y < p.Height; y++ {
		rows[y] = p.Row(y)
	}
	return rows
}

func (p *Pattern) String() string {
	var b strings.Builder
	for y := 0; y < p.Height; y++ {
		if y > 0 {
			b.WriteByte('/')
		}
		for x := 0; x < p.Width; x++ {
			v := p.At(x, y)
			if v == Wildcard {
				b.WriteByte('*')
			} else {
				fmt.Fprintf(&b, "%d", v)
			}
		}
	}
	return b.String()
}
