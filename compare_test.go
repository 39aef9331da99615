package vect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		assert.True(t, Equal(Of(1, 2), Of(1, 2)))
		assert.True(t, Equal(New[int](), New[int]()))
	})

	t.Run("unequal element", func(t *testing.T) {
		assert.False(t, Equal(Of(1, 2), Of(1, 3)))
	})

	t.Run("unequal length", func(t *testing.T) {
		assert.False(t, Equal(Of(1, 2), Of(1, 2, 3)))
	})

	t.Run("capacity is ignored", func(t *testing.T) {
		a := NewCapacity[int](Reserve(10))
		a.Push(1)
		assert.True(t, Equal(a, Of(1)))
	})
}

func TestEqualFunc(t *testing.T) {
	a := Of("A", "b")
	b := Of("a", "B")
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, EqualFunc(a, b, func(x, y string) bool { return x == y }))
}

func TestCompare(t *testing.T) {
	t.Run("lexicographic", func(t *testing.T) {
		assert.True(t, Less(Of(1, 2), Of(1, 3)))
		assert.False(t, Less(Of(1, 3), Of(1, 2)))
		assert.Negative(t, Compare(Of(1, 2), Of(2)))
	})

	t.Run("shorter is less on equal prefix", func(t *testing.T) {
		assert.True(t, Less(Of(1, 2), Of(1, 2, 3)))
		assert.Positive(t, Compare(Of(1, 2, 3), Of(1, 2)))
	})

	t.Run("equal vectors", func(t *testing.T) {
		assert.Zero(t, Compare(Of(1, 2), Of(1, 2)))
		assert.False(t, Less(Of(1, 2), Of(1, 2)))
	})

	t.Run("empty orders first", func(t *testing.T) {
		assert.True(t, Less(New[int](), Of(0)))
	})
}

func TestCompareFunc(t *testing.T) {
	a := Of("b", "a")
	b := Of("B", "C")
	got := CompareFunc(a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	})
	assert.Negative(t, got)
}
