// Package dijkstra implements Dijkstra's single-source shortest paths on a
// core.Graph whose edge payloads are non-negative int64 weights.
//
// Overview:
//
//   - Expands the closest unfinished vertex first, using heap.Heap as the
//     priority queue with lazy decrease-key.
//   - WithReturnPath records predecessors for Result.PathTo.
//   - WithMaxDistance stops exploring beyond a distance cap.
//   - WithInfEdgeThreshold treats heavy edges as impassable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrVertexNotFound: invalid input.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid options.
//   - ErrNegativeWeight: an edge weight below zero was reached.
//   - ErrUnreachable: PathTo on a vertex with no distance.
package dijkstra
