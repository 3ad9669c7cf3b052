package arrayops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmplaceBack(t *testing.T) {
	data := make([]int, 4)
	EmplaceBack(data, 0, 10)
	EmplaceBack(data, 1, 20)
	assert.Equal(t, []int{10, 20, 0, 0}, data)

	t.Run("capacity exceeded panics", func(t *testing.T) {
		full := make([]int, 2)
		require.Panics(t, func() { EmplaceBack(full, 2, 1) })
	})

	t.Run("negative size panics", func(t *testing.T) {
		require.Panics(t, func() { EmplaceBack(data, -1, 1) })
	})
}

func TestAppend(t *testing.T) {
	data := make([]int, 5)
	n := Append(data, 0, 1, 2)
	require.Equal(t, 2, n)
	n = Append(data, 2, 3)
	require.Equal(t, 1, n)
	assert.Equal(t, []int{1, 2, 3}, data[:3])

	t.Run("capacity exceeded panics", func(t *testing.T) {
		require.Panics(t, func() { Append(data, 3, 4, 5, 6) })
	})
}

func TestEmplace(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"front", 0, []int{9, 1, 2, 3}},
		{"middle", 1, []int{1, 9, 2, 3}},
		{"end", 3, []int{1, 2, 3, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, 4)
			copy(data, []int{1, 2, 3})
			Emplace(data, 3, tt.pos, 9)
			assert.Equal(t, tt.want, data)
		})
	}

	t.Run("position out of range panics", func(t *testing.T) {
		data := make([]int, 4)
		require.Panics(t, func() { Emplace(data, 2, 3, 9) })
	})
}

func TestInsert(t *testing.T) {
	data := make([]int, 6)
	copy(data, []int{1, 4, 5})
	Insert(data, 3, 1, []int{2, 3})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, data[:5])
}

func TestErase(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		data := []int{1, 2, 3, 4, 5}
		Erase(data, 5, 1, 2)
		assert.Equal(t, []int{1, 4, 5}, data[:3])
		// Trailing slots are zeroed.
		assert.Zero(t, data[3])
		assert.Zero(t, data[4])
	})

	t.Run("zeroes pointers for the collector", func(t *testing.T) {
		a, b := 1, 2
		data := []*int{&a, &b}
		Erase(data, 2, 1, 1)
		assert.Nil(t, data[1])
	})

	t.Run("out of bounds panics", func(t *testing.T) {
		data := []int{1, 2, 3}
		require.Panics(t, func() { Erase(data, 3, 2, 2) })
	})
}

func TestShiftUpDown(t *testing.T) {
	data := make([]int, 8)
	copy(data, []int{1, 2, 3, 4})

	ShiftUp(data, 4, 1, 2)
	// Elements [1,4) moved to [3,6); slot 0 untouched.
	assert.Equal(t, 1, data[0])
	assert.Equal(t, []int{2, 3, 4}, data[3:6])

	ShiftDown(data, 6, 3, 2)
	assert.Equal(t, []int{1, 2, 3, 4}, data[:4])

	t.Run("shift past capacity panics", func(t *testing.T) {
		small := make([]int, 4)
		require.Panics(t, func() { ShiftUp(small, 4, 0, 1) })
	})
}
