package util

import (
	"testing"

	"mtoohey.com/echo/internal/testutil/assert"
)

func TestClamp(t *testing.T) {
	t.Run("below", func(t *testing.T) {
		assert.Equal(t, 1, Clamp(1, -4, 10))
	})

	t.Run("inside", func(t *testing.T) {
		assert.Equal(t, 7, Clamp(1, 7, 10))
	})

	t.Run("above", func(t *testing.T) {
		assert.Equal(t, 10, Clamp(1, 1<<20, 10))
	})

	t.Run("bounds", func(t *testing.T) {
		assert.Equal(t, 1, Clamp(1, 1, 10))
		assert.Equal(t, 10, Clamp(1, 10, 10))
	})
}

func TestMin(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		assert.Zero(t, Min[int]())
	})

	t.Run("one", func(t *testing.T) {
		assert.Equal(t, 4, Min(4))
	})

	t.Run("many", func(t *testing.T) {
		assert.Equal(t, -2, Min(3, 9, -2, 5))
		assert.Equal(t, "a", Min("b", "a", "c"))
	})
}

func TestMax(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		assert.Zero(t, Max[float64]())
	})

	t.Run("one", func(t *testing.T) {
		assert.Equal(t, 4, Max(4))
	})

	t.Run("many", func(t *testing.T) {
		assert.Equal(t, 9, Max(3, 9, -2, 5))
		assert.Equal(t, 2.5, Max(2.5, -1, 0))
	})
}
