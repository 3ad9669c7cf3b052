package sortedarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want bool
	}{
		{"empty", nil, true},
		{"single", []int{5}, true},
		{"sorted", []int{1, 2, 3, 4}, true},
		{"sorted with duplicates", []int{1, 1, 2, 2}, true},
		{"unsorted", []int{2, 1}, false},
		{"unsorted tail", []int{1, 2, 4, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSorted(tt.data))
		})
	}
}

func TestFind(t *testing.T) {
	data := []int{10, 20, 20, 30}

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"before first", 5, 0},
		{"exact first", 10, 0},
		{"between", 15, 1},
		{"duplicate lower bound", 20, 1},
		{"exact last", 30, 3},
		{"past last", 40, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(data, tt.value))
		})
	}

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, Find([]int{}, 1))
	})
}

func TestContains(t *testing.T) {
	data := []int{1, 3, 5}
	assert.True(t, Contains(data, 3))
	assert.True(t, Contains(data, 5))
	assert.False(t, Contains(data, 2))
	assert.False(t, Contains(data, 9))
	assert.False(t, Contains([]int{}, 1))
}
