package sparsity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/raggo/sortedarray"
)

func TestInsertNonZero(t *testing.T) {
	p, err := New[int](3, 2)
	require.NoError(t, err)

	require.True(t, p.InsertNonZero(0, 5))
	require.True(t, p.InsertNonZero(0, 1))
	require.True(t, p.InsertNonZero(0, 3))

	assert.Equal(t, []int{1, 3, 5}, p.Columns(0))
	assert.Equal(t, 3, p.NumNonZeros(0))
	assert.Equal(t, 0, p.NumNonZeros(1))

	t.Run("duplicate", func(t *testing.T) {
		require.False(t, p.InsertNonZero(0, 3))
		assert.Equal(t, []int{1, 3, 5}, p.Columns(0))
	})
}

func TestInsertNonZeros(t *testing.T) {
	p, err := New[int](2, 1)
	require.NoError(t, err)

	n := p.InsertNonZeros(1, []int{4, 2, 6})
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{2, 4, 6}, p.Columns(1))

	// A batch overlapping existing entries inserts only the new ones.
	n = p.InsertNonZeros(1, []int{1, 4, 5})
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 2, 4, 5, 6}, p.Columns(1))
}

func TestRemoveNonZero(t *testing.T) {
	p, err := New[int](1, 4)
	require.NoError(t, err)
	p.InsertNonZeros(0, []int{1, 3, 5, 7, 9})

	require.True(t, p.RemoveNonZero(0, 5))
	require.False(t, p.RemoveNonZero(0, 5))
	assert.Equal(t, []int{1, 3, 7, 9}, p.Columns(0))

	n := p.RemoveNonZeros(0, []int{7, 3})
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 9}, p.Columns(0))
}

func TestRowCapacityGrows(t *testing.T) {
	p, err := New[int](2, 0)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.True(t, p.InsertNonZero(0, i*2))
	}
	assert.Equal(t, 100, p.NumNonZeros(0))
	assert.True(t, sortedarray.IsSorted(p.Columns(0)))

	// The neighboring row is untouched by the growth.
	assert.Equal(t, 0, p.NumNonZeros(1))
}

func TestPatternRandomized(t *testing.T) {
	const rows = 8
	p, err := New[int](rows, 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	shadow := make([]map[int]bool, rows)
	for i := range shadow {
		shadow[i] = map[int]bool{}
	}

	for step := 0; step < 2000; step++ {
		row := rng.Intn(rows)
		col := rng.Intn(50)
		if rng.Intn(3) == 0 {
			assert.Equal(t, shadow[row][col], p.RemoveNonZero(row, col))
			delete(shadow[row], col)
		} else {
			assert.Equal(t, !shadow[row][col], p.InsertNonZero(row, col))
			shadow[row][col] = true
		}
	}

	for row := 0; row < rows; row++ {
		cols := p.Columns(row)
		require.True(t, sortedarray.IsSorted(cols))
		require.Len(t, cols, len(shadow[row]))
		for _, c := range cols {
			assert.True(t, shadow[row][c])
		}
	}
}

func TestPatternCompress(t *testing.T) {
	p, err := New[int](3, 16)
	require.NoError(t, err)
	p.InsertNonZeros(0, []int{3, 1})
	p.InsertNonZeros(2, []int{9})

	p.Compress()

	assert.Equal(t, []int{1, 3}, p.Columns(0))
	assert.Equal(t, []int{9}, p.Columns(2))

	// Insertion still works after compression.
	require.True(t, p.InsertNonZero(0, 2))
	assert.Equal(t, []int{1, 2, 3}, p.Columns(0))
}

func TestPatternStringColumns(t *testing.T) {
	p, err := New[string](1, 0)
	require.NoError(t, err)
	p.InsertNonZeros(0, []string{"b", "a", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, p.Columns(0))
}
