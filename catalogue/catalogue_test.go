package catalogue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
alphabet: "BW"
patterns:
  - pattern: "WW/WW"
  - pattern: "W*W"
    symmetry: rot4
`

func TestParseLoadsAndDeduplicates(t *testing.T) {
	cat, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 2, cat.Alphabet.Size())
	// "WW/WW" is symmetric under rotation, contributing 1 pattern;
	// "W*W" under rot4 contributes 2: the horizontal 3x1 form and the
	// vertical 1x3 form (it is a palindrome, so a half-turn maps it onto
	// itself and the 180/270 degree rotations are duplicates).
	require.Len(t, cat.Patterns, 3)
}

func TestParseRejectsEmptyAlphabet(t *testing.T) {
	_, err := Parse([]byte(`
patterns:
  - pattern: "A"
`))
	require.Error(t, err)
}

func TestParseRejectsEmptyPatterns(t *testing.T) {
	_, err := Parse([]byte(`
alphabet: "AB"
patterns: []
`))
	require.Error(t, err)
}

func TestParseRejectsMalformedPattern(t *testing.T) {
	_, err := Parse([]byte(`
alphabet: "AB"
patterns:
  - pattern: "AB/A"
`))
	require.Error(t, err)
}
