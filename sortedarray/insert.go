package sortedarray

import (
	"cmp"

	"github.com/hupe1980/raggo/arrayops"
	"github.com/hupe1980/raggo/internal/check"
)

// The first maxCached insertion points found during the counting pass
// are reused during placement; beyond that they are recomputed.
const maxCached = 32

// Batches of at most localBufferSize values are sorted in a stack
// buffer instead of a fresh allocation.
const localBufferSize = 16

// Insert inserts value into the sorted slice data if not already
// present. Storage growth goes through cb: on a duplicate,
// cb.IncrementSize(data, 0) is called and Insert returns false;
// otherwise cb.IncrementSize(data, 1) supplies the (possibly relocated)
// storage, the value is placed, and cb.Insert reports the position.
func Insert[T cmp.Ordered](data []T, value T, cb Callbacks[T]) bool {
	size := len(data)

	var insertPos int
	switch {
	case size == 0 || value < data[0]:
		insertPos = 0
	case data[size-1] < value:
		insertPos = size
	default:
		// The first and last values are already ruled out.
		insertPos = Find(data, value)
	}

	if insertPos != size && data[insertPos] == value {
		cb.IncrementSize(data, 0)
		return false
	}

	newData := cb.IncrementSize(data, 1)
	arrayops.Emplace(newData, size, insertPos, value)
	cb.Insert(insertPos)
	return true
}

// InsertMany inserts the given values, not necessarily sorted, into the
// sorted slice data. A temporary copy of values is sorted first; the
// input is not modified. Returns the number of values inserted.
func InsertMany[T cmp.Ordered](data []T, values []T, cb Callbacks[T]) int {
	var local [localBufferSize]T
	buf := sortedCopy(values, local[:])
	return InsertSorted(data, buf, cb)
}

// InsertSorted inserts values, which must be sorted, into the sorted
// slice data, skipping values already present. cb.IncrementSize is
// called exactly once with the number of genuinely new values; the
// inserts are then performed back to front so each element is shifted
// at most once. Returns the number of values inserted.
func InsertSorted[T cmp.Ordered](data []T, values []T, cb Callbacks[T]) int {
	if check.Enabled && !IsSorted(values) {
		check.Failf("sortedarray: InsertSorted requires sorted values")
	}

	size := len(data)
	nVals := len(values)

	if nVals == 0 {
		cb.IncrementSize(data, 0)
		return 0
	}

	// Inserting into an empty array is a straight deduplicated copy.
	if size == 0 {
		nToInsert := 1
		for i := 1; i < nVals; i++ {
			if values[i] != values[i-1] {
				nToInsert++
			}
		}

		newData := cb.IncrementSize(data, nToInsert)
		newData[0] = values[0]
		cb.Set(0, 0)

		curInsertPos := 1
		for i := 1; i < nVals; i++ {
			if values[i] != values[i-1] {
				newData[curInsertPos] = values[i]
				cb.Set(curInsertPos, i)
				curInsertPos++
			}
		}
		return nToInsert
	}

	// Counting pass: walk values from largest to smallest, narrowing the
	// search window, and cache the first maxCached positions.
	var valuePositions, insertPositions [maxCached]int
	nToInsert := 0
	curPos := size
	for i := nVals - 1; i >= 0; i-- {
		if i != 0 && values[i] == values[i-1] {
			continue
		}

		curPos = Find(data[:curPos], values[i])
		if curPos == size || data[curPos] != values[i] {
			if nToInsert < maxCached {
				valuePositions[nToInsert] = i
				insertPositions[nToInsert] = curPos
			}
			nToInsert++
		}
	}

	newData := cb.IncrementSize(data, nToInsert)
	if nToInsert == 0 {
		return 0
	}

	// Placement pass: back to front, shifting the tail once per insert.
	nPreCalculated := nToInsert
	if nPreCalculated > maxCached {
		nPreCalculated = maxCached
	}

	prevInsertPos := size
	for i := 0; i < nPreCalculated; i++ {
		arrayops.ShiftUp(newData, prevInsertPos, insertPositions[i], nToInsert-i)

		curValuePos := valuePositions[i]
		newData[insertPositions[i]+nToInsert-i-1] = values[curValuePos]
		cb.InsertShifted(nToInsert-i, curValuePos, insertPositions[i], prevInsertPos)

		prevInsertPos = insertPositions[i]
	}

	if nToInsert <= maxCached {
		return nToInsert
	}

	// Positions past the cache are recomputed against the shifted array.
	prevValuePos := valuePositions[maxCached-1]
	nInserted := maxCached
	for i := prevValuePos - 1; i >= 0; i-- {
		if values[i] == values[i+1] {
			continue
		}

		pos := Find(newData[:prevInsertPos], values[i])
		if pos != prevInsertPos && newData[pos] == values[i] {
			continue
		}

		arrayops.ShiftUp(newData, prevInsertPos, pos, nToInsert-nInserted)
		newData[pos+nToInsert-nInserted-1] = values[i]
		cb.InsertShifted(nToInsert-nInserted, i, pos, prevInsertPos)

		nInserted++
		prevInsertPos = pos

		if nInserted == nToInsert {
			break
		}
	}

	if check.Enabled && nInserted != nToInsert {
		check.Failf("sortedarray: inserted %d of %d values", nInserted, nToInsert)
	}

	return nToInsert
}

// sortedCopy copies values into local when they fit, allocating
// otherwise, and sorts the copy.
func sortedCopy[T cmp.Ordered](values []T, local []T) []T {
	buf := local[:0]
	if len(values) > len(local) {
		buf = make([]T, 0, len(values))
	}
	buf = append(buf, values...)
	Sort(buf)
	return buf
}
