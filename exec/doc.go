// Package exec selects the execution backend for bulk per-sub-array
// operations: sequential, or multi-threaded over a worker pool. The
// container's data-parallel contract (distinct indices need no
// synchronization) makes the backends interchangeable at the call site.
package exec
