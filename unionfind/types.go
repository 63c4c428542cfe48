package unionfind

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidHandle indicates a zero, stale or foreign NodeHandle.
	ErrInvalidHandle = errors.New("unionfind: invalid node handle")

	// ErrNotRepresentative indicates Union was given a node that is not the
	// representative of its set.
	ErrNotRepresentative = errors.New("unionfind: node is not a set representative")
)

// lastID issues a distinct owner id to every UnionFind so that handles from one
// instance are rejected by another. Zero is never issued.
var lastID uint64

func nextID() uint64 { return atomic.AddUint64(&lastID, 1) }

// NodeHandle is a stable reference to a node of one UnionFind.
// The zero value is never valid.
type NodeHandle struct {
	owner uint64
	index int
}

// Index returns the node's position in insertion order (0-based).
func (h NodeHandle) Index() int { return h.index }

// node is the arena record behind a NodeHandle.
type node[T any] struct {
	payload   T
	rank      uint
	leader    int              // arena index; equals own index for a representative
	followers map[int]struct{} // allocated on first merge
}

// Option configures a UnionFind at construction time.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-allocates room for n nodes. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
