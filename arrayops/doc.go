// Package arrayops implements low-level, capacity-assumed operations on
// a flat slice plus a caller-tracked logical size: append, positional
// insert, erase and fixed-offset shifts.
//
// The caller guarantees sufficient capacity (len of the slice) except
// where noted, and is responsible for updating its size bookkeeping;
// none of these functions track size themselves. Contract violations
// panic when checks are enabled and are undefined behavior under the
// raggofast build tag.
package arrayops
