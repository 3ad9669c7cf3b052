package sortedarray

import "cmp"

// Callbacks decouples the sorted-set algorithms from storage ownership.
// The insert and remove routines report every structural change through
// it, and request capacity growth before writing past the current size.
//
// IncrementSize is called exactly once per operation with the number of
// values about to be added (possibly zero) and returns the storage slice
// to write into, whose length is the available capacity (at least
// len(cur) + nToAdd). The returned slice may alias cur or point at
// relocated storage.
type Callbacks[T cmp.Ordered] interface {
	IncrementSize(cur []T, nToAdd int) []T

	// Insert signals that a value was inserted at pos.
	Insert(pos int)

	// InsertShifted signals a batched insertion: nLeft insertions remain
	// (including this one), the value at valuePos of the input batch was
	// placed at pos, and the previous insertion happened at prevPos (or
	// the original size for the first insertion).
	InsertShifted(nLeft, valuePos, pos, prevPos int)

	// Set signals that position pos was set to the value at valuePos of
	// the input batch. Used on the empty-array fast path.
	Set(pos, valuePos int)

	// Remove signals that the entry at pos was removed.
	Remove(pos int)

	// RemoveShifted signals a batched removal: nRemoved entries have been
	// removed so far, the latest at curPos, and the next removal happens
	// at nextPos (or the original size if this was the last).
	RemoveShifted(nRemoved, curPos, nextPos int)
}

// NoOpCallbacks implements Callbacks over a caller-supplied storage
// slice of fixed capacity. It performs no bookkeeping; use it when the
// array already has room and nobody tracks structural changes.
type NoOpCallbacks[T cmp.Ordered] struct {
	// Storage is the full-capacity backing region.
	Storage []T
}

// IncrementSize returns the backing storage unchanged.
func (c NoOpCallbacks[T]) IncrementSize(cur []T, nToAdd int) []T { return c.Storage }

func (c NoOpCallbacks[T]) Insert(pos int)                                  {}
func (c NoOpCallbacks[T]) InsertShifted(nLeft, valuePos, pos, prevPos int) {}
func (c NoOpCallbacks[T]) Set(pos, valuePos int)                           {}
func (c NoOpCallbacks[T]) Remove(pos int)                                  {}
func (c NoOpCallbacks[T]) RemoveShifted(nRemoved, curPos, nextPos int)     {}
