package sparsity

import (
	"cmp"

	"github.com/hupe1980/raggo"
	"github.com/hupe1980/raggo/sortedarray"
)

// Pattern is a compressed-row sparsity pattern: one sorted,
// deduplicated column set per row, stored contiguously with per-row
// capacity slack. The pattern lives on the heap; row capacities grow
// automatically as entries are inserted.
//
// Distinct rows can be queried concurrently; inserting or removing
// entries must be externally serialized against all other use.
type Pattern[C cmp.Ordered] struct {
	aoa *raggo.ArrayOfArrays[C]
}

// New creates a pattern with numRows empty rows, each with
// initialRowCapacity reserved entries.
func New[C cmp.Ordered](numRows, initialRowCapacity int) (*Pattern[C], error) {
	aoa, err := raggo.New[C](numRows, initialRowCapacity)
	if err != nil {
		return nil, err
	}
	return &Pattern[C]{aoa: aoa}, nil
}

// NumRows returns the number of rows.
func (p *Pattern[C]) NumRows() int { return p.aoa.Size() }

// NumNonZeros returns the number of entries in the given row.
func (p *Pattern[C]) NumNonZeros(row int) int { return p.aoa.SizeOfArray(row) }

// Columns returns the sorted column entries of the given row, sharing
// the backing storage. The slice is invalidated by the next insertion
// or removal.
func (p *Pattern[C]) Columns(row int) []C { return p.aoa.Sub(row) }

// Contains reports whether the given row holds col.
func (p *Pattern[C]) Contains(row int, col C) bool {
	return sortedarray.Contains(p.aoa.Sub(row), col)
}

// InsertNonZero inserts col into the given row. Returns false if the
// entry was already present.
func (p *Pattern[C]) InsertNonZero(row int, col C) bool {
	return sortedarray.Insert(p.aoa.Sub(row), col, rowCallbacks[C]{p: p, row: row})
}

// InsertNonZeros inserts cols, not necessarily sorted, into the given
// row. Returns the number of entries actually inserted.
func (p *Pattern[C]) InsertNonZeros(row int, cols []C) int {
	return sortedarray.InsertMany(p.aoa.Sub(row), cols, rowCallbacks[C]{p: p, row: row})
}

// RemoveNonZero removes col from the given row. Returns false if the
// entry was not present.
func (p *Pattern[C]) RemoveNonZero(row int, col C) bool {
	return sortedarray.Remove(p.aoa.Sub(row), col, rowCallbacks[C]{p: p, row: row})
}

// RemoveNonZeros removes cols, not necessarily sorted, from the given
// row. Returns the number of entries actually removed.
func (p *Pattern[C]) RemoveNonZeros(row int, cols []C) int {
	return sortedarray.RemoveMany(p.aoa.Sub(row), cols, rowCallbacks[C]{p: p, row: row})
}

// Compress removes the capacity slack of every row, packing the entries
// contiguously. Useful once the pattern is fully assembled.
func (p *Pattern[C]) Compress() { p.aoa.Compress() }

// rowCallbacks adapts one row of the container to the sorted-set
// callback protocol: size growth claims capacity through
// SetCapacityOfArray, removals shrink the row size.
type rowCallbacks[C cmp.Ordered] struct {
	p   *Pattern[C]
	row int
}

func (cb rowCallbacks[C]) IncrementSize(cur []C, nToAdd int) []C {
	aoa := cb.p.aoa
	size := aoa.SizeOfArray(cb.row)

	if newSize := size + nToAdd; newSize > aoa.CapacityOfArray(cb.row) {
		newCapacity := 2 * aoa.CapacityOfArray(cb.row)
		if newCapacity < newSize {
			newCapacity = newSize
		}
		// Heap growth cannot fail; any error here is an invariant
		// violation.
		if err := aoa.SetCapacityOfArray(cb.row, newCapacity); err != nil {
			panic(err)
		}
	}

	v := aoa.View()
	v.SetSizeOfArray(cb.row, size+nToAdd)
	return v.Window(cb.row)
}

func (cb rowCallbacks[C]) Insert(pos int)                                  {}
func (cb rowCallbacks[C]) InsertShifted(nLeft, valuePos, pos, prevPos int) {}
func (cb rowCallbacks[C]) Set(pos, valuePos int)                           {}

func (cb rowCallbacks[C]) Remove(pos int) { cb.shrink(1) }

func (cb rowCallbacks[C]) RemoveShifted(nRemoved, curPos, nextPos int) { cb.shrink(1) }

func (cb rowCallbacks[C]) shrink(n int) {
	v := cb.p.aoa.View()
	v.SetSizeOfArray(cb.row, v.SizeOfArray(cb.row)-n)
}
