package sievego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySet(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	set := s.ClassifySet([]uint64{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, 8, set.Len())
	assert.Equal(t, uint64(4), set.Cardinality()) // 2, 3, 5, 7

	assert.False(t, set.Contains(0))
	assert.True(t, set.Contains(2))
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(4))
	assert.True(t, set.Contains(7))
	assert.False(t, set.Contains(-1))
	assert.False(t, set.Contains(100))
}

func TestResultSetIterator(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	set := s.ClassifySet([]uint64{4, 5, 6, 7, 8, 9, 10, 11})
	var got []int
	for i := range set.Iterator() {
		got = append(got, i)
	}
	assert.Equal(t, []int{1, 3, 7}, got) // 5, 7, 11
}

func TestResultSetIteratorEarlyStop(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	set := s.ClassifySet([]uint64{2, 3, 5, 7})
	count := 0
	for range set.Iterator() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestResultSetAndOr(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	a := s.ClassifySet([]uint64{2, 4, 5, 8}) // indices 0, 2
	b := s.ClassifySet([]uint64{3, 4, 6, 8}) // index 0

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, uint64(2), union.Cardinality())

	a.And(b)
	assert.Equal(t, uint64(1), a.Cardinality())
	assert.True(t, a.Contains(0))
	assert.False(t, a.Contains(2))
}
