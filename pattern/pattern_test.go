package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ab(t *testing.T) *Alphabet {
	t.Helper()
	return NewAlphabet("AB")
}

func TestParseSimple(t *testing.T) {
	a := ab(t)
	p, err := Parse(a, "AB/BA")
	require.NoError(t, err)
	require.Equal(t, 2, p.Width)
	require.Equal(t, 2, p.Height)
	require.Equal(t, 0, p.At(0, 0))
	require.Equal(t, 1, p.At(1, 0))
	require.Equal(t, 1, p.At(0, 1))
	require.Equal(t, 0, p.At(1, 1))
}

func TestParseWildcard(t *testing.T) {
	a := ab(t)
	p, err := Parse(a, "A*A")
	require.NoError(t, err)
	require.Equal(t, Wildcard, p.At(1, 0))
	require.Equal(t, 0, p.MinX)
	require.Equal(t, 2, p.MaxX)
	require.Len(t, p.WritePlan, 2)
}

func TestParseAllWildcardBoundingBoxCollapses(t *testing.T) {
	a := ab(t)
	p, err := Parse(a, "**/**")
	require.NoError(t, err)
	require.Equal(t, 0, p.MinX)
	require.Equal(t, 0, p.MaxX)
	require.Equal(t, 0, p.MinY)
	require.Equal(t, 0, p.MaxY)
	require.Empty(t, p.WritePlan)
}

func TestParseMismatchedRowLength(t *testing.T) {
	a := ab(t)
	_, err := Parse(a, "AB/A")
	require.ErrorIs(t, err, ErrMalformedPattern)
}

func TestParseUnknownSymbol(t *testing.T) {
	a := ab(t)
	_, err := Parse(a, "AC")
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestRows(t *testing.T) {
	a := ab(t)
	p, err := Parse(a, "AB/BA")
	require.NoError(t, err)
	rows := p.Rows()
	require.Len(t, rows, 2)
	// String renders symbol-IDs (A=0, B=1), not alphabet bytes.
	require.Equal(t, "01", rows[0].String())
	require.Equal(t, "10", rows[1].String())
}

func TestKeyDeduplicatesEquivalentRasters(t *testing.T) {
	a := ab(t)
	p1, _ := Parse(a, "AB")
	p2, _ := Parse(a, "AB")
	require.Equal(t, p1.Key(), p2.Key())

	p3, _ := Parse(a, "BA")
	require.NotEqual(t, p1.Key(), p3.Key())
}

func TestRotated(t *testing.T) {
	a := ab(t)
	p, err := Parse(a, "AB/BB")
	require.NoError(t, err)
	r := p.Rotated()
	require.Equal(t, p.Height, r.Width)
	require.Equal(t, p.Width, r.Height)
	// Rotating four times returns to the original raster.
	r4 := r.Rotated().Rotated().Rotated()
	require.Equal(t, p.Key(), r4.Key())
}

func TestReflected(t *testing.T) {
	a := ab(t)
	p, err := Parse(a, "AB")
	require.NoError(t, err)
	r := p.Reflected()
	require.Equal(t, "10", r.String())
	require.Equal(t, p.Key(), r.Reflected().Key())
}

func TestSymmetriesDeduplicate(t *testing.T) {
	a := NewAlphabet("A")
	p, err := Parse(a, "AA/AA")
	require.NoError(t, err)
	variants := p.Symmetries("all")
	require.Len(t, variants, 1, "a fully symmetric pattern must collapse to a single variant")
}

func TestSymmetriesRot4DistinctPattern(t *testing.T) {
	a := NewAlphabet("AB")
	p, err := Parse(a, "AB/BB")
	require.NoError(t, err)
	variants := p.Symmetries("rot4")
	require.Len(t, variants, 4)
}
