// Package testutil provides deterministic helpers for tests and
// benchmarks: a thread-safe seeded random source and generators for
// ragged test data.
package testutil
