// Package mmap provides anonymous memory mappings.
//
// MapAnon creates read-write anonymous mappings that back the library's
// off-heap buffer space. Mapped memory is invisible to the Go garbage
// collector, so only pointer-free element types may live in it; the
// buffer layer enforces that restriction.
package mmap
