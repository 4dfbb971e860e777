package sampleset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddHasDelete(t *testing.T) {
	s := New(10)
	require.False(t, s.Has(3))
	s.Add(3)
	require.True(t, s.Has(3))
	require.Equal(t, 1, s.Size())
	s.Delete(3)
	require.False(t, s.Has(3))
	require.Equal(t, 0, s.Size())
}

func TestDeleteMiddleSwapsWithLast(t *testing.T) {
	s := New(10)
	s.Add(1)
	s.Add(2)
	s.Add(3)
	s.Delete(2)
	require.False(t, s.Has(2))
	require.True(t, s.Has(1))
	require.True(t, s.Has(3))
	require.Equal(t, 2, s.Size())
}

func TestAddIdempotent(t *testing.T) {
	s := New(4)
	s.Add(1)
	s.Add(1)
	require.Equal(t, 1, s.Size())
}

func TestSampleEmpty(t *testing.T) {
	s := New(4)
	_, ok := s.Sample()
	require.False(t, ok)
}

func TestSampleOnlyReturnsMembers(t *testing.T) {
	s := New(20)
	members := map[int]bool{2: true, 5: true, 11: true}
	for v := range members {
		s.Add(v)
	}
	for i := 0; i < 200; i++ {
		v, ok := s.Sample()
		require.True(t, ok)
		require.True(t, members[v], "sampled value %d not among members", v)
	}
}
