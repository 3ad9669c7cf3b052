// Package buffer implements the raw storage layer behind the container
// types. A Buffer owns a flat, contiguous allocation of elements in one
// of two memory spaces: the Go heap, or an off-heap anonymous memory
// mapping. Logical size is tracked by the caller; the buffer only knows
// its capacity.
//
// The free functions (Reserve, DynamicReserve, Resize, CopyInto) take
// the caller's current logical size so that only live elements are
// preserved across reallocation. Any backing-storage strategy with these
// semantics is a valid substitute for the container layer above.
package buffer
