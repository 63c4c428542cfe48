// Package prim_kruskal computes minimum spanning trees of bidirectional
// core.Graph values whose edge payloads are int64 weights.
//
//   - Kruskal(g): sorts candidates through a heap.Heap and joins components
//     with a unionfind.UnionFind. Ties resolve in heap order.
//   - Prim(g, root): grows one tree from root, taking the lightest edge that
//     leaves it.
//
// Both return the chosen edge handles and their total weight. On a connected
// graph both totals are equal; the chosen edges may differ among equal weights.
//
// Errors:
//
//   - ErrInvalidGraph: nil or directed graph.
//   - ErrDisconnected: no spanning tree exists.
//
// Complexity: O(E log E) time, O(V + E) memory.
package prim_kruskal
