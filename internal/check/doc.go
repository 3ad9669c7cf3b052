// Package check controls the library's contract checking.
//
// Checks are active by default: an out-of-range index, a capacity
// overflow or a negative size panics with a diagnostic naming the
// offending values. Building with the "raggofast" tag compiles the
// checks out entirely for hot numerical loops.
package check
