package heap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates ExtractTop or Peek was called on an empty heap.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrNilPolicy indicates New was called without an ordering policy.
	ErrNilPolicy = errors.New("heap: ordering policy is nil")
)

// Policy is the ordering injected into a Heap.
//
// Less(a, b) reports whether a belongs strictly above b ("heap order").
// For a min-heap that is a < b, for a max-heap a > b.
// Equal(a, b) reports whether a and b carry the same key.
type Policy[T any] interface {
	Equal(a, b T) bool
	Less(a, b T) bool
}

// Keyed is implemented by composite element types that expose an orderable key.
type Keyed[K constraints.Ordered] interface {
	Key() K
}

// Option configures a Heap at construction time.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-allocates room for n elements. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
