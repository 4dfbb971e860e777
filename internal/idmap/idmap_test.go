package idmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIDInsertionOrder(t *testing.T) {
	m := NewIdentity[string]()
	require.Equal(t, 0, m.GetOrCreateID("a"))
	require.Equal(t, 1, m.GetOrCreateID("b"))
	require.Equal(t, 0, m.GetOrCreateID("a"), "re-inserting an existing key must return its original ID")
	require.Equal(t, 2, m.Size())
}

func TestGetID(t *testing.T) {
	m := NewIdentity[string]()
	m.GetOrCreateID("x")
	id, err := m.GetID("x")
	require.NoError(t, err)
	require.Equal(t, 0, id)

	_, err = m.GetID("missing")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestGetByID(t *testing.T) {
	m := NewIdentity[string]()
	m.GetOrCreateID("first")
	m.GetOrCreateID("second")
	require.Equal(t, "first", m.GetByID(0))
	require.Equal(t, "second", m.GetByID(1))
}

type pair struct {
	a, b int
}

func TestCustomKeyFunc(t *testing.T) {
	m := New(func(p pair) [2]int { return [2]int{p.a, p.b} })
	id1 := m.GetOrCreateID(pair{1, 2})
	id2 := m.GetOrCreateID(pair{1, 2})
	require.Equal(t, id1, id2)
}

func TestEachInsertionOrder(t *testing.T) {
	m := NewIdentity[int]()
	m.GetOrCreateID(30)
	m.GetOrCreateID(10)
	m.GetOrCreateID(20)
	var order []int
	m.Each(func(id int, x int) { order = append(order, x) })
	require.Equal(t, []int{30, 10, 20}, order)
}
