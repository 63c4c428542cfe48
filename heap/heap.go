package heap

import (
	"fmt"
	"strings"
)

// Heap is a binary priority queue over T ordered by a Policy.
//
// The zero value is not usable; construct with New.
type Heap[T any] struct {
	items  []T
	policy Policy[T]
}

// New returns an empty Heap ordered by policy.
// It panics if policy is nil: a heap without an order has no meaning.
//
// Complexity: O(1), plus O(capacity) when WithCapacity is supplied.
func New[T any](policy Policy[T], opts ...Option) *Heap[T] {
	if policy == nil {
		panic(ErrNilPolicy.Error())
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{
		items:  make([]T, 0, o.capacity),
		policy: policy,
	}
}

// Insert adds x to the heap.
//
// Steps:
//  1. Append x at the end of the backing slice (logical index n).
//  2. Sift-up: while the parent does not satisfy heap order relative to the
//     child (!Less(parent, child)), swap them and move one level up.
//  3. Stop at the root (parent index 0) or as soon as order holds.
//
// Elements equal to their parent keep climbing, so among equal keys the most
// recently inserted one ends up closest to the root.
//
// Complexity: O(log n).
func (h *Heap[T]) Insert(x T) {
	h.items = append(h.items, x)
	child := len(h.items)
	for parent := child / 2; parent >= 1; parent = child / 2 {
		if h.policy.Less(h.at(parent), h.at(child)) {
			break
		}
		h.swap(parent, child)
		child = parent
	}
}

// ExtractTop removes and returns the top element: the smallest for a min
// policy, the largest for a max policy.
//
// Steps:
//  1. Fail with ErrEmptyHeap if there is nothing to extract.
//  2. Move the last element to the root and shrink the slice by one.
//  3. Sift-down: pick the better child (left wins ties under LessOrEqual; the
//     right child is only considered when it exists), swap if the parent is
//     not strictly better, else stop.
//
// Complexity: O(log n).
func (h *Heap[T]) ExtractTop() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmptyHeap
	}

	top := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero // drop the reference held by the spare slot
	h.items = h.items[:n-1]
	h.siftDown(1)

	return top, nil
}

// Peek returns the top element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// Size returns the number of elements currently stored. O(1).
func (h *Heap[T]) Size() int { return len(h.items) }

// Items returns a copy of the backing slice in array (level) order.
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)

	return out
}

// Valid reports whether the heap property holds for every parent/child pair.
// Complexity: O(n).
func (h *Heap[T]) Valid() bool {
	for child := 2; child <= len(h.items); child++ {
		if h.policy.Less(h.at(child), h.at(child/2)) {
			return false
		}
	}

	return true
}

// String renders the heap in array order, elements separated by one space.
func (h *Heap[T]) String() string {
	var sb strings.Builder
	for i, x := range h.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}

	return sb.String()
}

// siftDown restores heap order from the 1-based index parent downward.
func (h *Heap[T]) siftDown(parent int) {
	size := len(h.items)
	for 2*parent <= size {
		child := 2 * parent
		if child+1 <= size && !lessOrEqual(h.policy, h.at(child), h.at(child+1)) {
			child++
		}
		if h.policy.Less(h.at(parent), h.at(child)) {
			return
		}
		h.swap(parent, child)
		parent = child
	}
}

// at returns the element at 1-based position i.
func (h *Heap[T]) at(i int) T { return h.items[i-1] }

// swap exchanges the elements at 1-based positions i and j.
func (h *Heap[T]) swap(i, j int) {
	h.items[i-1], h.items[j-1] = h.items[j-1], h.items[i-1]
}
