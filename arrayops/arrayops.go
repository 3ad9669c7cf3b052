package arrayops

import (
	"github.com/hupe1980/raggo/internal/check"
)

// EmplaceBack constructs a new element at data[size]. The caller
// guarantees len(data) > size and increments its size afterwards.
func EmplaceBack[T any](data []T, size int, value T) {
	if check.Enabled {
		if size < 0 {
			check.Failf("arrayops: negative size %d", size)
		}
		if size >= len(data) {
			check.Failf("arrayops: capacity exceeded: size=%d capacity=%d", size, len(data))
		}
	}
	data[size] = value
}

// Append copies values to data[size:] and returns the number appended.
func Append[T any](data []T, size int, values ...T) int {
	if check.Enabled {
		if size < 0 {
			check.Failf("arrayops: negative size %d", size)
		}
		if size+len(values) > len(data) {
			check.Failf("arrayops: capacity exceeded: size=%d n=%d capacity=%d", size, len(values), len(data))
		}
	}
	copy(data[size:], values)
	return len(values)
}

// Emplace shifts elements [pos, size) up one slot and places value at
// pos. 0 <= pos <= size.
func Emplace[T any](data []T, size, pos int, value T) {
	if check.Enabled {
		if pos < 0 || pos > size {
			check.Failf("arrayops: insert position out of range: pos=%d size=%d", pos, size)
		}
		if size >= len(data) {
			check.Failf("arrayops: capacity exceeded: size=%d capacity=%d", size, len(data))
		}
	}
	copy(data[pos+1:size+1], data[pos:size])
	data[pos] = value
}

// Insert shifts elements [pos, size) up by len(values) slots and copies
// values into the gap. 0 <= pos <= size.
func Insert[T any](data []T, size, pos int, values []T) {
	n := len(values)
	if check.Enabled {
		if pos < 0 || pos > size {
			check.Failf("arrayops: insert position out of range: pos=%d size=%d", pos, size)
		}
		if size+n > len(data) {
			check.Failf("arrayops: capacity exceeded: size=%d n=%d capacity=%d", size, n, len(data))
		}
	}
	copy(data[pos+n:size+n], data[pos:size])
	copy(data[pos:pos+n], values)
}

// Erase removes n elements starting at pos, shifting [pos+n, size) down
// and zeroing the vacated trailing slots so the garbage collector can
// reclaim anything they referenced.
func Erase[T any](data []T, size, pos, n int) {
	if check.Enabled {
		if pos < 0 || n < 0 || pos+n > size {
			check.Failf("arrayops: erase range out of bounds: pos=%d n=%d size=%d", pos, n, size)
		}
	}
	copy(data[pos:size-n], data[pos+n:size])
	var zero T
	for i := size - n; i < size; i++ {
		data[i] = zero
	}
}

// ShiftUp relocates elements [pos, size) up by amount without changing
// their count. The vacated slots keep their previous contents and must
// be treated as uninitialized.
func ShiftUp[T any](data []T, size, pos, amount int) {
	if check.Enabled {
		if pos < 0 || pos > size || amount < 0 {
			check.Failf("arrayops: shift out of bounds: pos=%d size=%d amount=%d", pos, size, amount)
		}
		if size+amount > len(data) {
			check.Failf("arrayops: capacity exceeded: size=%d amount=%d capacity=%d", size, amount, len(data))
		}
	}
	copy(data[pos+amount:size+amount], data[pos:size])
}

// ShiftDown relocates elements [pos, size) down by amount without
// changing their count.
func ShiftDown[T any](data []T, size, pos, amount int) {
	if check.Enabled {
		if pos < 0 || pos > size || amount < 0 || pos-amount < 0 {
			check.Failf("arrayops: shift out of bounds: pos=%d size=%d amount=%d", pos, size, amount)
		}
	}
	copy(data[pos-amount:size-amount], data[pos:size])
}
