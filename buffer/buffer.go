package buffer

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/raggo/internal/mmap"
)

var (
	// ErrPointerType is returned when a pointer-bearing element type is
	// moved to or allocated in the mapped space.
	ErrPointerType = errors.New("buffer: element type contains pointers, mapped space requires pointer-free types")
	// ErrNegativeCapacity is returned when a negative capacity is requested.
	ErrNegativeCapacity = errors.New("buffer: negative capacity")
)

// Buffer owns a flat allocation of elements in a single memory space.
// The zero value is an empty heap buffer ready for use.
//
// A Buffer has no notion of logical size; callers pass their current
// size to the reallocation functions so only live elements are copied.
type Buffer[T any] struct {
	data    []T
	space   Space
	mapping *mmap.Mapping // non-nil iff space == Mapped and capacity > 0
}

// New creates a buffer with the given capacity in the given space.
func New[T any](capacity int, space Space) (*Buffer[T], error) {
	b := &Buffer[T]{space: space}
	if err := Reserve(b, 0, capacity); err != nil {
		return nil, err
	}
	return b, nil
}

// Data returns the full backing slice, of length Capacity. Elements past
// the caller's logical size are uninitialized storage.
func (b *Buffer[T]) Data() []T { return b.data }

// Capacity returns the number of elements the buffer can hold.
func (b *Buffer[T]) Capacity() int { return len(b.data) }

// Space returns the memory space the buffer currently lives in.
func (b *Buffer[T]) Space() Space { return b.space }

// Free releases the backing storage and resets the buffer to an empty
// heap state. Mapped memory is unmapped immediately; heap memory is left
// to the garbage collector.
func (b *Buffer[T]) Free() {
	if b.mapping != nil {
		_ = b.mapping.Close()
		b.mapping = nil
	}
	b.data = nil
	b.space = Heap
}

// Move migrates the buffer's contents to the target space. All Capacity
// elements are copied, so uninitialized storage regions carry over
// bit-for-bit. When touch is true the new allocation is eagerly faulted
// in (a kernel hint on the mapped path). Move is synchronous and has no
// partial-failure mode: on error the buffer is unchanged.
func (b *Buffer[T]) Move(space Space, touch bool) error {
	if b.space == space {
		if touch && b.mapping != nil {
			_ = b.mapping.Advise(mmap.AccessWillNeed)
		}
		return nil
	}

	capacity := len(b.data)
	data, mapping, err := alloc[T](capacity, space)
	if err != nil {
		return err
	}
	copy(data, b.data)
	if touch && mapping != nil {
		_ = mapping.Advise(mmap.AccessWillNeed)
	}

	if b.mapping != nil {
		_ = b.mapping.Close()
	}
	b.data = data
	b.mapping = mapping
	b.space = space
	return nil
}

// Reserve grows the buffer to hold at least newCapacity elements,
// preserving the first size elements. It never shrinks.
func Reserve[T any](b *Buffer[T], size int, newCapacity int) error {
	if newCapacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, newCapacity)
	}
	if newCapacity <= len(b.data) {
		return nil
	}

	data, mapping, err := alloc[T](newCapacity, b.space)
	if err != nil {
		return err
	}
	copy(data, b.data[:size])

	if b.mapping != nil {
		_ = b.mapping.Close()
	}
	b.data = data
	b.mapping = mapping
	return nil
}

// DynamicReserve grows the buffer geometrically: at least newCapacity,
// at least double the current capacity. Amortizes repeated growth.
func DynamicReserve[T any](b *Buffer[T], size int, newCapacity int) error {
	if newCapacity > len(b.data) {
		if doubled := 2 * len(b.data); doubled > newCapacity {
			newCapacity = doubled
		}
	}
	return Reserve(b, size, newCapacity)
}

// Resize changes the logical size of the contents, growing the capacity
// if needed. New elements in [size, newSize) are set to def; on shrink
// the vacated elements in [newSize, size) are zeroed so the garbage
// collector can reclaim anything they reference.
func Resize[T any](b *Buffer[T], size int, newSize int, def T) error {
	if newSize < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, newSize)
	}
	if err := Reserve(b, size, newSize); err != nil {
		return err
	}
	if newSize > size {
		for i := size; i < newSize; i++ {
			b.data[i] = def
		}
	} else {
		var zero T
		for i := newSize; i < size; i++ {
			b.data[i] = zero
		}
	}
	return nil
}

// CopyInto replaces the first dstSize elements of dst with the first
// srcCount elements of src, reserving capacity as needed. Vacated
// trailing elements are zeroed.
func CopyInto[T any](dst *Buffer[T], dstSize int, src *Buffer[T], srcCount int) error {
	if err := Reserve(dst, 0, srcCount); err != nil {
		return err
	}
	copy(dst.data[:srcCount], src.data[:srcCount])
	var zero T
	for i := srcCount; i < dstSize; i++ {
		dst.data[i] = zero
	}
	return nil
}

func alloc[T any](capacity int, space Space) ([]T, *mmap.Mapping, error) {
	if capacity == 0 {
		return nil, nil, nil
	}
	if space == Heap {
		return make([]T, capacity), nil, nil
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		// Zero-size types carry no data; the heap slice is free.
		return make([]T, capacity), nil, nil
	}
	if hasPointers[T]() {
		return nil, nil, ErrPointerType
	}

	mapping, err := mmap.MapAnon(capacity * elemSize)
	if err != nil {
		return nil, nil, fmt.Errorf("buffer: mapped allocation failed: %w", err)
	}
	bytes := mapping.Bytes()
	data := unsafe.Slice((*T)(unsafe.Pointer(&bytes[0])), capacity)
	return data, mapping, nil
}

// PointerFree reports whether T contains no pointer-typed memory.
// Only pointer-free types can live in mapped space or be serialized
// byte-for-byte.
func PointerFree[T any]() bool {
	return !hasPointers[T]()
}

// hasPointers reports whether T contains any pointer-typed memory. Such
// types cannot live in mapped space because the garbage collector does
// not scan it.
func hasPointers[T any]() bool {
	return typeHasPointers(reflect.TypeOf((*T)(nil)).Elem())
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, strings, channels, funcs, interfaces.
		return true
	}
}
