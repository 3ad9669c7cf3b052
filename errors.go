package raggo

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned when a requested size is negative.
	ErrNegativeSize = errors.New("size must be non-negative")

	// ErrNegativeCapacity is returned when a requested capacity is negative.
	ErrNegativeCapacity = errors.New("capacity must be non-negative")
)

// ErrInvalidCapacities indicates a capacities slice that cannot describe
// a valid container, e.g. one holding a negative entry.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCapacities struct {
	Index    int
	Capacity int
	cause    error
}

func (e *ErrInvalidCapacities) Error() string {
	return fmt.Sprintf("invalid capacity %d for sub-array %d", e.Capacity, e.Index)
}

func (e *ErrInvalidCapacities) Unwrap() error { return e.cause }
