package sortedarray

import (
	"cmp"
	"math/bits"
)

// Partitions at or below this length are left for the final insertion
// sort pass.
const introsortThreshold = 16

// Sort sorts data in place in non-decreasing order using an introsort
// hybrid: median-of-three quicksort with a heapsort fallback once the
// recursion depth exceeds 2*floor(log2 n), and insertion sort for small
// partitions.
func Sort[T cmp.Ordered](data []T) {
	SortFunc(data, func(a, b T) bool { return a < b })
}

// SortFunc is Sort with a caller-supplied strict ordering.
func SortFunc[T any](data []T, less func(a, b T) bool) {
	introsort(len(data),
		func(i, j int) bool { return less(data[i], data[j]) },
		func(i, j int) { data[i], data[j] = data[j], data[i] })
}

// DualSort sorts keys in place and permutes data identically, preserving
// the mapping between keys[i] and data[i].
func DualSort[K cmp.Ordered, V any](keys []K, data []V) {
	DualSortFunc(keys, data, func(a, b K) bool { return a < b })
}

// DualSortFunc is DualSort with a caller-supplied strict ordering on the
// keys.
func DualSortFunc[K any, V any](keys []K, data []V, less func(a, b K) bool) {
	introsort(len(keys),
		func(i, j int) bool { return less(keys[i], keys[j]) },
		func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
			data[i], data[j] = data[j], data[i]
		})
}

func introsort(n int, less func(i, j int) bool, swap func(i, j int)) {
	if n > introsortThreshold {
		introsortLoop(0, n, 2*bits.Len(uint(n)), less, swap)
	}
	insertionSort(0, n, less, swap)
}

// introsortLoop reduces every partition of [lo, hi) to at most
// introsortThreshold elements; the caller finishes with one insertion
// sort pass over the whole range.
func introsortLoop(lo, hi, depth int, less func(i, j int) bool, swap func(i, j int)) {
	for hi-lo > introsortThreshold {
		if depth == 0 {
			heapsort(lo, hi, less, swap)
			return
		}
		depth--
		mid := partition(lo, hi, less, swap)
		introsortLoop(mid, hi, depth, less, swap)
		hi = mid
	}
}

// partition orders data[lo] <= pivot <= data[hi-1], then partitions
// [lo, hi) around a median-of-three pivot. The boundary elements act as
// sentinels for the unguarded scans.
func partition(lo, hi int, less func(i, j int) bool, swap func(i, j int)) int {
	mid := lo + (hi-lo)/2

	// Order lo, mid, hi-1.
	if less(mid, lo) {
		swap(mid, lo)
	}
	if less(hi-1, mid) {
		swap(hi-1, mid)
		if less(mid, lo) {
			swap(mid, lo)
		}
	}

	// Stash the pivot at hi-2.
	pivot := hi - 2
	swap(mid, pivot)

	i, j := lo, pivot
	for {
		i++
		for less(i, pivot) {
			i++
		}
		j--
		for less(pivot, j) {
			j--
		}
		if i >= j {
			break
		}
		swap(i, j)
	}
	swap(i, pivot)
	return i
}

func insertionSort(lo, hi int, less func(i, j int) bool, swap func(i, j int)) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && less(j, j-1); j-- {
			swap(j, j-1)
		}
	}
}

func heapsort(lo, hi int, less func(i, j int) bool, swap func(i, j int)) {
	n := hi - lo
	siftDown := func(root, end int) {
		for {
			child := 2*root + 1
			if child >= end {
				return
			}
			if child+1 < end && less(lo+child, lo+child+1) {
				child++
			}
			if !less(lo+root, lo+child) {
				return
			}
			swap(lo+root, lo+child)
			root = child
		}
	}

	for root := n/2 - 1; root >= 0; root-- {
		siftDown(root, n)
	}
	for end := n - 1; end > 0; end-- {
		swap(lo, lo+end)
		siftDown(0, end)
	}
}
