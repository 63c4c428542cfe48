// Package heap provides a binary, array-backed priority queue that is generic
// over the element type and an injected ordering Policy.
//
// What
//
//   - Heap[T] stores its elements in a dense slice that is addressed 1-based for
//     parent/child arithmetic: parent(i) = i/2, children(p) = 2p, 2p+1.
//   - The Policy decides what "top" means. MinOrder/MaxOrder use the natural
//     order of constraints.Ordered types; MinKeyed/MaxKeyed call the element's
//     Key() method; MinBy/MaxBy take a key-extraction function at the call site
//     (useful for pointer elements: heap.MinBy(func(p *int) int { return *p })).
//   - A max policy is the mirror of its min policy: Less is inverted, Equal is not.
//
// Heap property
//
//	For every child c of a parent p: !Less(items[c], items[p]).
//	No child is strictly "better" than its parent under the policy.
//
// Operations (n = Size())
//
//	Insert(x)      O(log n)  append, then sift-up while !Less(parent, child)
//	ExtractTop()   O(log n)  swap root with last, shrink, sift-down
//	Peek()         O(1)
//	Size()         O(1)
//
// Errors
//
//	ErrEmptyHeap - ExtractTop or Peek on a heap with zero elements.
//
// Concurrency
//
//	A Heap is not safe for concurrent use; guard each instance with a mutex
//	if it is shared between goroutines.
package heap
