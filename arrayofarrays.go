package raggo

import (
	"fmt"

	"github.com/hupe1980/raggo/buffer"
	"github.com/hupe1980/raggo/internal/check"
)

// ArrayOfArrays is the owning ragged container. It holds numArrays
// sub-arrays in one contiguous value buffer, each with independent size
// and reserved capacity, and is the only type that can reallocate.
//
// The zero value is not usable; construct with New.
type ArrayOfArrays[T any] struct {
	offsets *buffer.Buffer[int64]
	sizes   *buffer.Buffer[int64]
	values  *buffer.Buffer[T]
	n       int
	space   buffer.Space
	logger  *Logger
}

// New creates a container with numArrays sub-arrays, each with
// defaultArrayCapacity reserved value slots.
func New[T any](numArrays, defaultArrayCapacity int, optFns ...Option) (*ArrayOfArrays[T], error) {
	o := applyOptions(optFns)

	a := &ArrayOfArrays[T]{space: o.space, logger: o.logger}
	var err error
	// offsets always holds at least the leading zero boundary.
	if a.offsets, err = buffer.New[int64](1, o.space); err != nil {
		return nil, err
	}
	if a.sizes, err = buffer.New[int64](0, o.space); err != nil {
		return nil, err
	}
	if a.values, err = buffer.New[T](0, o.space); err != nil {
		return nil, err
	}

	if err := a.Resize(numArrays, defaultArrayCapacity); err != nil {
		return nil, err
	}
	return a, nil
}

// View returns a non-owning view that can modify values and grow or
// shrink sub-arrays within their reserved capacities. The view is
// invalidated by the next structural mutation.
func (a *ArrayOfArrays[T]) View() View[T] {
	return View[T]{viewBase[T]{offsets: a.offsets, sizes: a.sizes, values: a.values, n: a.n}}
}

// ViewConstSizes returns a view that can modify existing values only.
func (a *ArrayOfArrays[T]) ViewConstSizes() ViewConstSizes[T] { return a.View().ConstSizes() }

// ViewConst returns a read-only view.
func (a *ArrayOfArrays[T]) ViewConst() ViewConst[T] { return a.View().Const() }

// Space returns the memory space the backing buffers live in.
func (a *ArrayOfArrays[T]) Space() buffer.Space { return a.space }

// Size returns the number of sub-arrays.
func (a *ArrayOfArrays[T]) Size() int { return a.n }

// SizeOfArray returns the number of live elements in sub-array i.
func (a *ArrayOfArrays[T]) SizeOfArray(i int) int { return a.View().SizeOfArray(i) }

// CapacityOfArray returns the reserved capacity of sub-array i.
func (a *ArrayOfArrays[T]) CapacityOfArray(i int) int { return a.View().CapacityOfArray(i) }

// ValueCapacity returns the total value capacity across all sub-arrays.
func (a *ArrayOfArrays[T]) ValueCapacity() int { return a.View().ValueCapacity() }

// Sub returns the live elements of sub-array i, sharing backing storage.
func (a *ArrayOfArrays[T]) Sub(i int) []T { return a.View().Sub(i) }

// At returns element j of sub-array i.
func (a *ArrayOfArrays[T]) At(i, j int) T { return a.View().At(i, j) }

// Set overwrites element j of sub-array i.
func (a *ArrayOfArrays[T]) Set(i, j int, value T) { a.View().Set(i, j, value) }

// EmplaceBack appends one element to sub-array i, which must have spare
// capacity. Use SetCapacityOfArray or ResizeFromCapacities to grow
// capacities first.
func (a *ArrayOfArrays[T]) EmplaceBack(i int, value T) { a.View().EmplaceBack(i, value) }

// EmplaceBackAtomic appends one element to sub-array i, safe against
// concurrent EmplaceBackAtomic calls on the same i. See
// View.EmplaceBackAtomic.
func (a *ArrayOfArrays[T]) EmplaceBackAtomic(i int, value T) { a.View().EmplaceBackAtomic(i, value) }

// AppendToArray appends values to the end of sub-array i.
func (a *ArrayOfArrays[T]) AppendToArray(i int, values ...T) { a.View().AppendToArray(i, values...) }

// InsertIntoArray inserts values into sub-array i at position pos.
func (a *ArrayOfArrays[T]) InsertIntoArray(i, pos int, values ...T) {
	a.View().InsertIntoArray(i, pos, values...)
}

// EraseFromArray removes n elements from sub-array i starting at pos.
func (a *ArrayOfArrays[T]) EraseFromArray(i, pos, n int) { a.View().EraseFromArray(i, pos, n) }

// Resize grows or shrinks the number of sub-arrays. New sub-arrays are
// empty with defaultArrayCapacity reserved slots; removed sub-arrays
// have their live elements cleared first. Shrinking never releases
// backing storage.
func (a *ArrayOfArrays[T]) Resize(newSize, defaultArrayCapacity int) error {
	if newSize < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, newSize)
	}
	if defaultArrayCapacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, defaultArrayCapacity)
	}

	if newSize <= a.n {
		o := a.offsets.Data()
		s := a.sizes.Data()
		vals := a.values.Data()
		var zero T
		for i := newSize; i < a.n; i++ {
			for j := o[i]; j < o[i]+s[i]; j++ {
				vals[j] = zero
			}
			s[i] = 0
		}
		a.n = newSize
		return nil
	}

	preserve := a.n + 1
	if a.offsets.Capacity() == 0 {
		preserve = 0
	}
	if err := buffer.Reserve(a.offsets, preserve, newSize+1); err != nil {
		return err
	}
	o := a.offsets.Data()
	if preserve == 0 {
		o[0] = 0
	}
	if err := buffer.Resize(a.sizes, a.n, newSize, 0); err != nil {
		return err
	}
	for i := a.n; i < newSize; i++ {
		o[i+1] = o[i] + int64(defaultArrayCapacity)
	}
	if err := buffer.Reserve(a.values, int(o[a.n]), int(o[newSize])); err != nil {
		return err
	}
	a.n = newSize
	return nil
}

// ResizeFromCapacities rebuilds the whole structure from an explicit
// capacity per sub-array: offsets become the prefix sum over capacities
// and every sub-array starts empty. Existing live elements are cleared.
func (a *ArrayOfArrays[T]) ResizeFromCapacities(capacities []int) error {
	for i, c := range capacities {
		if c < 0 {
			return &ErrInvalidCapacities{Index: i, Capacity: c}
		}
	}

	a.destroyAll()

	n := len(capacities)
	if err := buffer.Reserve(a.offsets, 0, n+1); err != nil {
		return err
	}
	o := a.offsets.Data()
	o[0] = 0
	for i, c := range capacities {
		o[i+1] = o[i] + int64(c)
	}
	if err := buffer.Resize(a.sizes, a.n, n, 0); err != nil {
		return err
	}
	if err := buffer.Reserve(a.values, 0, int(o[n])); err != nil {
		return err
	}
	a.n = n
	return nil
}

// Compress removes the slack between each sub-array's size and its
// capacity by shifting later sub-arrays down and recomputing offsets.
// Element order within every sub-array is preserved. The backing
// allocation itself is not shrunk.
func (a *ArrayOfArrays[T]) Compress() {
	if a.n == 0 {
		return
	}
	o := a.offsets.Data()
	s := a.sizes.Data()
	vals := a.values.Data()

	totalBefore := o[a.n]
	w := int64(0)
	for i := 0; i < a.n; i++ {
		start := o[i]
		o[i] = w
		copy(vals[w:w+s[i]], vals[start:start+s[i]])
		w += s[i]
	}
	o[a.n] = w

	var zero T
	for j := w; j < totalBefore; j++ {
		vals[j] = zero
	}
}

// SetCapacityOfArray changes the reserved capacity of sub-array i,
// shifting all later sub-arrays' data. Shrinking below the current size
// clears the trailing live elements first. O(total size).
func (a *ArrayOfArrays[T]) SetCapacityOfArray(i, newCapacity int) error {
	if check.Enabled && (i < 0 || i >= a.n) {
		check.Failf("sub-array index %d out of range [0, %d)", i, a.n)
	}
	if newCapacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, newCapacity)
	}

	o := a.offsets.Data()
	s := a.sizes.Data()
	delta := int64(newCapacity) - (o[i+1] - o[i])
	if delta == 0 {
		return nil
	}
	total := o[a.n]
	var zero T

	if delta > 0 {
		if err := buffer.DynamicReserve(a.values, int(total), int(total+delta)); err != nil {
			return err
		}
		vals := a.values.Data()
		copy(vals[o[i+1]+delta:total+delta], vals[o[i+1]:total])
		// The shift leaves stale copies in the newly opened region.
		for j := o[i+1]; j < o[i+1]+delta; j++ {
			vals[j] = zero
		}
	} else {
		vals := a.values.Data()
		if s[i] > int64(newCapacity) {
			for j := o[i] + int64(newCapacity); j < o[i]+s[i]; j++ {
				vals[j] = zero
			}
			s[i] = int64(newCapacity)
		}
		copy(vals[o[i+1]+delta:total+delta], vals[o[i+1]:total])
		for j := total + delta; j < total; j++ {
			vals[j] = zero
		}
	}

	for j := i + 1; j <= a.n; j++ {
		o[j] += delta
	}
	return nil
}

// Reserve pre-allocates bookkeeping for at least newNumArrays
// sub-arrays without changing logical contents.
func (a *ArrayOfArrays[T]) Reserve(newNumArrays int) error {
	if newNumArrays < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, newNumArrays)
	}
	preserve := a.n + 1
	if a.offsets.Capacity() == 0 {
		preserve = 0
	}
	if err := buffer.Reserve(a.offsets, preserve, newNumArrays+1); err != nil {
		return err
	}
	if preserve == 0 {
		a.offsets.Data()[0] = 0
	}
	return buffer.Reserve(a.sizes, a.n, newNumArrays)
}

// ReserveValues pre-allocates total value capacity without changing
// logical contents.
func (a *ArrayOfArrays[T]) ReserveValues(newValueCapacity int) error {
	return buffer.Reserve(a.values, a.ValueCapacity(), newValueCapacity)
}

// CopyFrom deep-assigns this container's contents from the source view:
// existing live elements are cleared, then offsets, sizes and the live
// elements of every sub-array are copied.
func (a *ArrayOfArrays[T]) CopyFrom(src ViewConst[T]) error {
	a.destroyAll()

	n := src.Size()
	if err := buffer.Reserve(a.offsets, 0, n+1); err != nil {
		return err
	}
	if err := buffer.Resize(a.sizes, a.n, n, 0); err != nil {
		return err
	}

	o := a.offsets.Data()
	s := a.sizes.Data()
	o[0] = 0
	if n > 0 {
		copy(o[1:n+1], src.offsets.Data()[1:n+1])
		copy(s[:n], src.sizes.Data()[:n])
	}

	if err := buffer.Reserve(a.values, 0, int(o[n])); err != nil {
		return err
	}
	vals := a.values.Data()
	sv := src.values.Data()
	for i := 0; i < n; i++ {
		copy(vals[o[i]:o[i]+s[i]], sv[o[i]:o[i]+s[i]])
	}
	a.n = n
	return nil
}

// Move migrates all backing buffers to the target memory space.
func (a *ArrayOfArrays[T]) Move(space buffer.Space, touch bool) error {
	err := a.View().Move(space, touch)
	a.logger.LogMove(space.String(), touch, err)
	if err != nil {
		return err
	}
	a.space = space
	return nil
}

// Free clears all live elements, releases the backing storage and
// resets the container to the unpopulated state.
func (a *ArrayOfArrays[T]) Free() {
	a.offsets.Free()
	a.sizes.Free()
	a.values.Free()
	a.n = 0
	if a.space != buffer.Heap {
		// Buffer.Free resets to heap; restore the configured space on
		// the now-empty buffers. Zero-capacity buffers cannot fail.
		a.offsets, _ = buffer.New[int64](0, a.space)
		a.sizes, _ = buffer.New[int64](0, a.space)
		a.values, _ = buffer.New[T](0, a.space)
	}
}

// destroyAll clears every live element and zeroes all sizes, leaving
// offsets and capacities untouched.
func (a *ArrayOfArrays[T]) destroyAll() {
	o := a.offsets.Data()
	s := a.sizes.Data()
	vals := a.values.Data()
	var zero T
	for i := 0; i < a.n; i++ {
		for j := o[i]; j < o[i]+s[i]; j++ {
			vals[j] = zero
		}
		s[i] = 0
	}
}
