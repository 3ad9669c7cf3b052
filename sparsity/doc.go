// Package sparsity provides a compressed-row sparsity pattern built on
// the ragged container and the sorted-set callback protocol. Each row
// holds a sorted, deduplicated set of column entries; row capacities
// grow on demand.
package sparsity
