package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertContains(t *testing.T) {
	s := New(70)
	require.False(t, s.Contains(5))
	s.Insert(5)
	s.Insert(69)
	require.True(t, s.Contains(5))
	require.True(t, s.Contains(69))
	require.False(t, s.Contains(6))
}

func TestFull(t *testing.T) {
	s := Full(10)
	for i := 0; i < 10; i++ {
		require.True(t, s.Contains(i), "expected %d to be a member of Full(10)", i)
	}
	require.Equal(t, 10, len(s.Elements()))
}

func TestUnionInPlace(t *testing.T) {
	a := New(8)
	a.Insert(1)
	a.Insert(3)
	b := New(8)
	b.Insert(3)
	b.Insert(5)
	a.UnionInPlace(b)
	require.Equal(t, []int{1, 3, 5}, a.Elements())
}

func TestEachOrder(t *testing.T) {
	s := New(200)
	for _, i := range []int{199, 0, 64, 63, 65, 128} {
		s.Insert(i)
	}
	var got []int
	s.Each(func(i int) { got = append(got, i) })
	require.Equal(t, []int{0, 63, 64, 65, 128, 199}, got)
}

func TestKeyCanonical(t *testing.T) {
	a := New(20)
	a.Insert(3)
	a.Insert(17)
	b := New(20)
	b.Insert(17)
	b.Insert(3)
	require.Equal(t, a.Key(), b.Key())

	c := New(20)
	c.Insert(3)
	require.NotEqual(t, a.Key(), c.Key())
}

func TestRemoveAndClone(t *testing.T) {
	a := New(16)
	a.Insert(4)
	a.Insert(9)
	clone := a.Clone()
	a.Remove(4)
	require.False(t, a.Contains(4))
	require.True(t, clone.Contains(4), "clone must not be affected by mutation of the original")
}

func TestEqual(t *testing.T) {
	a := New(10)
	a.Insert(1)
	b := New(10)
	b.Insert(1)
	require.True(t, a.Equal(b))
	b.Insert(2)
	require.False(t, a.Equal(b))
}

func TestIsEmpty(t *testing.T) {
	s := New(5)
	require.True(t, s.IsEmpty())
	s.Insert(2)
	require.False(t, s.IsEmpty())
}
