package sortedarray

import (
	"cmp"

	"github.com/hupe1980/raggo/arrayops"
	"github.com/hupe1980/raggo/internal/check"
)

// Remove removes value from the sorted slice data if present, shifting
// the survivors down and reporting the position through cb.Remove.
// Returns whether the value was removed.
func Remove[T cmp.Ordered](data []T, value T, cb Callbacks[T]) bool {
	size := len(data)

	index := Find(data, value)
	if index == size || data[index] != value {
		return false
	}

	arrayops.Erase(data, size, index, 1)
	cb.Remove(index)
	return true
}

// RemoveMany removes the given values, not necessarily sorted, from the
// sorted slice data. A temporary copy of values is sorted first; the
// input is not modified. Returns the number of values removed.
func RemoveMany[T cmp.Ordered](data []T, values []T, cb Callbacks[T]) int {
	var local [localBufferSize]T
	buf := sortedCopy(values, local[:])
	return RemoveSorted(data, buf, cb)
}

// RemoveSorted removes values, which must be sorted, from the sorted
// slice data. Survivors are shifted down in a single pass and the
// vacated trailing slots are zeroed. cb.RemoveShifted is invoked once
// per removal. Returns the number of values removed.
//
// A probe value larger than every element of data aborts the whole
// batch with 0 removals, even if smaller values in the batch would have
// matched.
func RemoveSorted[T cmp.Ordered](data []T, values []T, cb Callbacks[T]) int {
	if check.Enabled && !IsSorted(values) {
		check.Failf("sortedarray: RemoveSorted requires sorted values")
	}

	size := len(data)
	nVals := len(values)

	if nVals == 0 {
		return 0
	}

	// Find the first batch value that is actually present.
	firstValuePos := nVals
	curPos := size
	for i := 0; i < nVals; i++ {
		curPos = Find(data, values[i])

		if curPos == size {
			return 0
		}

		if data[curPos] == values[i] {
			firstValuePos = i
			break
		}
	}

	if firstValuePos == nVals {
		return 0
	}

	nRemoved := 0
	for curValuePos := firstValuePos; curValuePos < nVals; {
		// Find the next value to remove.
		nextValuePos := nVals
		nextPos := size
		for j := curValuePos + 1; j < nVals; j++ {
			if values[j] == values[j-1] {
				continue
			}

			pos := Find(data[curPos:], values[j]) + curPos
			if pos == size {
				break
			}

			if data[pos] == values[j] {
				nextValuePos = j
				nextPos = pos
				break
			}
		}

		// Shift the survivors between this removal and the next down over
		// the accumulated gap.
		nRemoved++
		arrayops.ShiftDown(data, nextPos, curPos+1, nRemoved)
		cb.RemoveShifted(nRemoved, curPos, nextPos)

		curValuePos = nextValuePos
		curPos = nextPos

		if curPos == size {
			break
		}
	}

	// Zero the freed tail once at the end.
	var zero T
	for i := size - nRemoved; i < size; i++ {
		data[i] = zero
	}

	return nRemoved
}
