package prefilter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRejectsEmptyLiteralSet(t *testing.T) {
	rp, ok := Build(nil)
	require.False(t, ok)
	require.Nil(t, rp)
}

func TestBuildRejectsEmptyLiteral(t *testing.T) {
	rp, ok := Build([][]byte{{0, 1}, {}})
	require.False(t, ok)
	require.Nil(t, rp)
}

func TestMayContainLiteral(t *testing.T) {
	rp, ok := Build([][]byte{{0, 1}, {1, 1, 0}})
	require.True(t, ok)
	require.True(t, rp.MayContainLiteral([]byte{2, 0, 1, 2}))
	require.True(t, rp.MayContainLiteral([]byte{1, 1, 0}))
	require.False(t, rp.MayContainLiteral([]byte{2, 2, 2}))
}

func TestMayContainLiteralNilReceiver(t *testing.T) {
	var rp *RowPrefilter
	require.True(t, rp.MayContainLiteral([]byte{9, 9}))
}
