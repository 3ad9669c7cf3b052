// Package conv provides overflow-checked integer conversions.
//
// The container bookkeeping is int64 internally while on-disk formats
// and byte-size arithmetic use unsigned widths; every narrowing or
// sign-changing conversion goes through this package so that data loss
// surfaces as an error instead of silent truncation.
package conv
