package sortedarray

import (
	"fmt"
	"testing"

	"github.com/hupe1980/raggo/testutil"
)

func BenchmarkSort(b *testing.B) {
	for _, size := range []int{16, 256, 4096, 65536} {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			rng := testutil.NewRNG(99)
			values := rng.Values(size, 1<<40)
			work := make([]int64, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(work, values)
				Sort(work)
			}
		})
	}
}

func BenchmarkDualSort(b *testing.B) {
	const size = 4096
	rng := testutil.NewRNG(99)
	keys := rng.Values(size, 1<<40)
	vals := rng.Values(size, 1<<40)
	workKeys := make([]int64, size)
	workVals := make([]int64, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(workKeys, keys)
		copy(workVals, vals)
		DualSort(workKeys, workVals)
	}
}

func BenchmarkInsertSorted(b *testing.B) {
	rng := testutil.NewRNG(7)
	base := intSlice(rng.Values(1024, 1<<40))
	Sort(base)
	base = dedup(base)
	batch := intSlice(rng.Values(64, 1<<40))
	Sort(batch)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := newGrowing(base)
		InsertSorted(c.live(), batch, c)
	}
}

// The growing test callbacks are int-typed; bridge the int64 bench data.
func intSlice(values []int64) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

func dedup(sorted []int) []int {
	out := sorted[:0:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
