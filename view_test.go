package raggo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMutabilityLadder(t *testing.T) {
	aoa, err := New[int](0, 0)
	require.NoError(t, err)
	require.NoError(t, aoa.ResizeFromCapacities([]int{3, 2}))
	aoa.AppendToArray(0, 1, 2)
	aoa.EmplaceBack(1, 5)

	v := aoa.View()
	v.EmplaceBack(0, 3)
	assert.Equal(t, []int{1, 2, 3}, v.Sub(0))

	cs := v.ConstSizes()
	cs.Set(0, 1, 20)
	assert.Equal(t, []int{1, 20, 3}, cs.Sub(0))
	assert.Equal(t, 3, cs.SizeOfArray(0))

	rc := cs.Const()
	assert.Equal(t, 2, rc.Size())
	assert.Equal(t, 20, rc.At(0, 1))
	assert.Equal(t, []int{5}, rc.Sub(1))
	assert.Equal(t, 2, rc.CapacityOfArray(1))
}

func TestViewSubIsClipped(t *testing.T) {
	aoa, err := New[int](0, 0)
	require.NoError(t, err)
	require.NoError(t, aoa.ResizeFromCapacities([]int{2, 2}))
	aoa.AppendToArray(0, 1, 2)
	aoa.EmplaceBack(1, 3)

	sub := aoa.Sub(0)
	assert.Equal(t, 2, cap(sub), "append through the slice must not reach the neighbor")
}

func TestViewAppendToArray(t *testing.T) {
	t.Run("non-empty sub-array", func(t *testing.T) {
		aoa, err := New[int](1, 8)
		require.NoError(t, err)
		aoa.EmplaceBack(0, 1)

		v := aoa.View()
		v.AppendToArray(0, 2, 3)
		assert.Equal(t, 3, v.SizeOfArray(0))
		assert.Equal(t, []int{1, 2, 3}, v.Sub(0))

		// Repeated appends accumulate past the existing elements.
		v.AppendToArray(0, 4)
		v.AppendToArray(0, 5, 6)
		assert.Equal(t, 6, v.SizeOfArray(0))
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, v.Sub(0))
	})

	t.Run("after erase", func(t *testing.T) {
		aoa, err := New[int](1, 4)
		require.NoError(t, err)
		aoa.AppendToArray(0, 1, 2, 3)
		aoa.EraseFromArray(0, 0, 2)

		aoa.AppendToArray(0, 9)
		assert.Equal(t, []int{3, 9}, aoa.Sub(0))
	})
}

func TestViewInsertIntoArray(t *testing.T) {
	aoa, err := New[int](0, 0)
	require.NoError(t, err)
	require.NoError(t, aoa.ResizeFromCapacities([]int{5}))
	aoa.AppendToArray(0, 1, 4, 5)

	v := aoa.View()
	v.InsertIntoArray(0, 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Sub(0))
}

func TestViewSharesStorage(t *testing.T) {
	aoa, err := New[int](1, 4)
	require.NoError(t, err)
	aoa.AppendToArray(0, 1, 2)

	v1 := aoa.View()
	v2 := aoa.View()
	v1.Set(0, 0, 10)
	assert.Equal(t, 10, v2.At(0, 0))

	v1.EmplaceBack(0, 3)
	assert.Equal(t, 3, v2.SizeOfArray(0))
}
