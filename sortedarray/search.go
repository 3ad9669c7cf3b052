package sortedarray

import (
	"cmp"

	"github.com/hupe1980/raggo/internal/check"
)

// IsSorted reports whether data is sorted in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 0; i+1 < len(data); i++ {
		if data[i+1] < data[i] {
			return false
		}
	}
	return true
}

// Find returns the index of the first element greater than or equal to
// value (the lower bound), or len(data) if no such element exists. data
// must be sorted.
func Find[T cmp.Ordered](data []T, value T) int {
	if check.Enabled && !IsSorted(data) {
		check.Failf("sortedarray: Find requires sorted input")
	}

	lower, upper := 0, len(data)
	for lower != upper {
		guess := (lower + upper) / 2
		if data[guess] < value {
			lower = guess + 1
		} else {
			upper = guess
		}
	}
	return lower
}

// Contains reports whether the sorted slice data contains value.
func Contains[T cmp.Ordered](data []T, value T) bool {
	pos := Find(data, value)
	return pos != len(data) && data[pos] == value
}
