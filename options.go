package raggo

import (
	"github.com/hupe1980/raggo/buffer"
)

type options struct {
	space  buffer.Space
	logger *Logger
}

// Option configures ArrayOfArrays construction.
type Option func(*options)

// WithSpace selects the memory space for the backing buffers. The
// default is buffer.Heap. buffer.Mapped places the buffers in anonymous
// memory-mapped pages outside the Go heap, which restricts the element
// type to pointer-free types.
func WithSpace(space buffer.Space) Option {
	return func(o *options) {
		o.space = space
	}
}

// WithLogger configures structured logging for structural operations.
// Defaults to a no-op logger; the per-element hot paths never log.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		space:  buffer.Heap,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
