// Package raggo provides a ragged "array of arrays" container for Go.
//
// An ArrayOfArrays stores a variable number of variable-length sub-arrays
// in a single contiguous value buffer, with per-sub-array capacity slack
// so that elements can be appended without relocating the whole
// structure. It is aimed at numerical codes that build large adjacency
// lists, sparsity patterns and similar ragged relations, often from many
// goroutines at once.
//
// # Quick Start
//
//	aoa, _ := raggo.New[int](0, 0)
//	_ = aoa.ResizeFromCapacities([]int{2, 0, 3})
//	aoa.EmplaceBack(0, 10)
//	aoa.EmplaceBack(0, 20)
//	aoa.EmplaceBack(2, 1)
//	fmt.Println(aoa.Sub(0)) // [10 20]
//
// # Views
//
// The owning container hands out non-owning views with decreasing
// mutability: View (append and modify), ViewConstSizes (modify existing
// values only) and ViewConst (read only). Views stay valid until the
// next structural mutation of the owning container (Resize, Reserve,
// SetCapacityOfArray, Compress, Free).
//
// # Concurrency
//
// Distinct sub-arrays can be read and appended to concurrently without
// synchronization; concurrent appends to the same sub-array must use
// EmplaceBackAtomic. Structural mutation must be externally serialized
// against all concurrent use.
//
// # Bounds checks
//
// All index and capacity contracts are checked by default and panic with
// a diagnostic on violation. Builds with the "raggofast" tag compile the
// checks out.
package raggo
