// Package sortedarray maintains a slice as a deduplicated, sorted set
// of values under batched updates, while the caller controls storage
// growth through the Callbacks capability interface.
//
// The container layer (or any client such as a sparsity pattern) owns
// the memory; these routines only decide where values belong. All
// routines that require sorted input verify it when checks are enabled
// and are undefined behavior on unsorted input under the raggofast
// build tag.
package sortedarray
