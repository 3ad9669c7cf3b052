package buffer

// Space identifies the memory space backing a buffer's allocation.
type Space int

const (
	// Heap is the default space: allocations come from the Go heap and
	// are managed by the garbage collector.
	Heap Space = iota
	// Mapped is off-heap memory backed by an anonymous mapping. It is
	// invisible to the garbage collector, so only pointer-free element
	// types may be stored there.
	Mapped
)

func (s Space) String() string {
	switch s {
	case Heap:
		return "heap"
	case Mapped:
		return "mapped"
	default:
		return "unknown"
	}
}
