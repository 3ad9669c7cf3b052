package raggo

import (
	"sync/atomic"

	"github.com/hupe1980/raggo/arrayops"
	"github.com/hupe1980/raggo/buffer"
	"github.com/hupe1980/raggo/internal/check"
)

// viewBase carries the three backing buffers and the sub-array count
// shared by every view flavor. offsets has numArrays+1 entries and is
// non-decreasing; sizes has numArrays entries with
// 0 <= sizes[i] <= offsets[i+1]-offsets[i]; the live region of
// sub-array i is values[offsets[i] : offsets[i]+sizes[i]].
type viewBase[T any] struct {
	offsets *buffer.Buffer[int64]
	sizes   *buffer.Buffer[int64]
	values  *buffer.Buffer[T]
	n       int
}

// View is a non-owning handle over an ArrayOfArrays that can modify
// values and grow or shrink sub-arrays within their reserved capacity.
// It cannot change capacities; exceeding one is a contract violation.
//
// A View stays valid until the next structural mutation of the owning
// container.
type View[T any] struct {
	viewBase[T]
}

// ViewConstSizes can modify existing values but not the size of any
// sub-array.
type ViewConstSizes[T any] struct {
	viewBase[T]
}

// ViewConst is a read-only handle. The slices returned by Sub must not
// be written through.
type ViewConst[T any] struct {
	viewBase[T]
}

// ConstSizes converts to a view that cannot change sub-array sizes.
func (v View[T]) ConstSizes() ViewConstSizes[T] { return ViewConstSizes[T]{v.viewBase} }

// Const converts to a read-only view.
func (v View[T]) Const() ViewConst[T] { return ViewConst[T]{v.viewBase} }

// Const converts to a read-only view.
func (v ViewConstSizes[T]) Const() ViewConst[T] { return ViewConst[T]{v.viewBase} }

// Size returns the number of sub-arrays.
func (v viewBase[T]) Size() int { return v.n }

// SizeOfArray returns the number of live elements in sub-array i.
func (v viewBase[T]) SizeOfArray(i int) int {
	v.checkArray(i)
	return int(v.sizes.Data()[i])
}

// CapacityOfArray returns the reserved capacity of sub-array i.
func (v viewBase[T]) CapacityOfArray(i int) int {
	v.checkArray(i)
	o := v.offsets.Data()
	return int(o[i+1] - o[i])
}

// ValueCapacity returns the total value capacity across all sub-arrays.
func (v viewBase[T]) ValueCapacity() int {
	if v.n == 0 {
		return 0
	}
	return int(v.offsets.Data()[v.n])
}

// Sub returns the live elements of sub-array i as a slice sharing the
// backing storage. The slice's capacity is clipped to the sub-array so
// appends through it cannot reach a neighbor.
func (v viewBase[T]) Sub(i int) []T {
	v.checkArray(i)
	o := v.offsets.Data()
	s := v.sizes.Data()[i]
	return v.values.Data()[o[i] : o[i]+s : o[i+1]]
}

// At returns element j of sub-array i.
func (v viewBase[T]) At(i, j int) T {
	v.checkElement(i, j)
	return v.values.Data()[v.offsets.Data()[i]+int64(j)]
}

// Move migrates the backing buffers to the target memory space. The
// offsets buffer is migrated without the touch hint: offsets are never
// mutated through a view, so there is nothing to fault in eagerly.
func (v viewBase[T]) Move(space buffer.Space, touch bool) error {
	if err := v.offsets.Move(space, false); err != nil {
		return err
	}
	if err := v.sizes.Move(space, touch); err != nil {
		return err
	}
	return v.values.Move(space, touch)
}

// Set overwrites element j of sub-array i.
func (v View[T]) Set(i, j int, value T) { v.viewBase.set(i, j, value) }

// Set overwrites element j of sub-array i.
func (v ViewConstSizes[T]) Set(i, j int, value T) { v.viewBase.set(i, j, value) }

func (v viewBase[T]) set(i, j int, value T) {
	v.checkElement(i, j)
	v.values.Data()[v.offsets.Data()[i]+int64(j)] = value
}

// EmplaceBack appends one element to sub-array i. The sub-array must
// have spare capacity; a view cannot reallocate.
func (v View[T]) EmplaceBack(i int, value T) {
	v.checkArray(i)
	o := v.offsets.Data()
	s := v.sizes.Data()
	if check.Enabled && s[i] >= o[i+1]-o[i] {
		check.Failf("sub-array %d is at capacity %d", i, o[i+1]-o[i])
	}
	arrayops.EmplaceBack(v.window(i), int(s[i]), value)
	s[i]++
}

// EmplaceBackAtomic appends one element to sub-array i and is safe
// against concurrent EmplaceBackAtomic calls targeting the same i. The
// atomic add on sizes[i] claims a unique slot; the element write after
// it is uncontended. Capacity must be pre-reserved, exactly as for
// EmplaceBack.
func (v View[T]) EmplaceBackAtomic(i int, value T) {
	v.checkArray(i)
	o := v.offsets.Data()
	s := v.sizes.Data()
	j := atomic.AddInt64(&s[i], 1) - 1
	if check.Enabled && j >= o[i+1]-o[i] {
		check.Failf("sub-array %d is at capacity %d", i, o[i+1]-o[i])
	}
	v.values.Data()[o[i]+j] = value
}

// AppendToArray appends values to the end of sub-array i.
func (v View[T]) AppendToArray(i int, values ...T) {
	v.checkArray(i)
	s := v.sizes.Data()
	n := arrayops.Append(v.window(i), int(s[i]), values...)
	s[i] += int64(n)
}

// InsertIntoArray inserts values into sub-array i at position pos,
// shifting later elements up.
func (v View[T]) InsertIntoArray(i, pos int, values ...T) {
	v.checkArray(i)
	s := v.sizes.Data()
	arrayops.Insert(v.window(i), int(s[i]), pos, values)
	s[i] += int64(len(values))
}

// EraseFromArray removes n elements from sub-array i starting at pos,
// shifting later elements down and zeroing the vacated slots.
func (v View[T]) EraseFromArray(i, pos, n int) {
	v.checkArray(i)
	s := v.sizes.Data()
	arrayops.Erase(v.window(i), int(s[i]), pos, n)
	s[i] -= int64(n)
}

// Window returns the full reserved-capacity region of sub-array i.
// Elements past SizeOfArray(i) are uninitialized storage.
func (v View[T]) Window(i int) []T {
	v.checkArray(i)
	return v.window(i)
}

// SetSizeOfArray sets the size of sub-array i without touching element
// storage: grown elements are uninitialized and must be written by the
// caller, shrunk elements are not cleared. This is the low-level
// primitive behind the sorted-set callback protocol; prefer EmplaceBack
// and EraseFromArray elsewhere.
func (v View[T]) SetSizeOfArray(i, newSize int) {
	v.checkArray(i)
	o := v.offsets.Data()
	if check.Enabled && (newSize < 0 || int64(newSize) > o[i+1]-o[i]) {
		check.Failf("new size %d out of range [0, %d] for sub-array %d", newSize, o[i+1]-o[i], i)
	}
	v.sizes.Data()[i] = int64(newSize)
}

// window returns the full capacity region of sub-array i.
func (v viewBase[T]) window(i int) []T {
	o := v.offsets.Data()
	return v.values.Data()[o[i]:o[i+1]:o[i+1]]
}

func (v viewBase[T]) checkArray(i int) {
	if check.Enabled && (i < 0 || i >= v.n) {
		check.Failf("sub-array index %d out of range [0, %d)", i, v.n)
	}
}

func (v viewBase[T]) checkElement(i, j int) {
	v.checkArray(i)
	if check.Enabled && (j < 0 || int64(j) >= v.sizes.Data()[i]) {
		check.Failf("element index %d out of range [0, %d) in sub-array %d", j, v.sizes.Data()[i], i)
	}
}
