package pattern

// Rotated returns p rotated 90 degrees clockwise. The out-of-scope demo
// driver's "symmetry expansion of user rules" (spec §1) composes these
// primitives; they live on Pattern itself because they are pure
// data-type operations, independent of any rule-rewriting logic.
func (p *Pattern) Rotated() *Pattern {
	newW, newH := p.Height, p.Width
	cells := make([]int, newW*newH)
	for ny := 0; ny < newH; ny++ {
		for nx := 0; nx < newW; nx++ {
			cells[nx+ny*newW] = p.At(ny, p.Height-1-nx)
		}
	}
	return New(newW, newH, cells)
}

// Reflected returns p mirrored left-to-right.
func (p *Pattern) Reflected() *Pattern {
	cells := make([]int, p.Width*p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			cells[x+y*p.Width] = p.At(p.Width-1-x, y)
		}
	}
	return New(p.Width, p.Height, cells)
}

func rotations(p *Pattern) []*Pattern {
	r1 := p.Rotated()
	r2 := r1.Rotated()
	r3 := r2.Rotated()
	return []*Pattern{p, r1, r2, r3}
}

// Symmetries expands p under a named symmetry group, returning a
// canonical-key-deduplicated set of patterns including p itself:
//
//   - "" / "identity": just p.
//   - "mirror": p and its horizontal reflection.
//   - "rot4": the 4 rotations of p.
//   - "all": the full 8-element dihedral group (4 rotations x mirror).
func (p *Pattern) Symmetries(group string) []*Pattern {
	var variants []*Pattern
	switch group {
	case "", "identity":
		variants = []*Pattern{p}
	case "mirror":
		variants = []*Pattern{p, p.Reflected()}
	case "rot4":
		variants = rotations(p)
	case "all":
		variants = append(rotations(p), rotations(p.Reflected())...)
	default:
		variants = []*Pattern{p}
	}
	return dedupeByKey(variants)
}

func dedupeByKey(patterns []*Pattern) []*Pattern {
	seen := make(map[string]bool, len(patterns))
	out := make([]*Pattern, 0, len(patterns))
	for _, p := range patterns {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		out = append(out, p)
	}
	return out
}
