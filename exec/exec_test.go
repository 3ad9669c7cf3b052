package exec

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackends(t *testing.T) {
	backends := map[string]Backend{
		"sequential":       Sequential{},
		"parallel default": Parallel{},
		"parallel 3":       Parallel{Workers: 3},
		"parallel many":    Parallel{Workers: 64},
	}

	for name, b := range backends {
		t.Run(name, func(t *testing.T) {
			const n = 1000
			visits := make([]int32, n)
			b.ForEach(n, func(i int) {
				atomic.AddInt32(&visits[i], 1)
			})
			for i, v := range visits {
				require.Equal(t, int32(1), v, "index %d", i)
			}
		})

		t.Run(name+" empty", func(t *testing.T) {
			called := false
			b.ForEach(0, func(int) { called = true })
			assert.False(t, called)
		})
	}
}

func TestSequentialOrder(t *testing.T) {
	var order []int
	Sequential{}.ForEach(5, func(i int) { order = append(order, i) })
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}
