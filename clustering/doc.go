// Package clustering implements single-linkage max-spacing k-clustering over a
// weighted edge list, composed from the heap and unionfind packages.
//
// Algorithm (Kruskal stopped early):
//
//  1. One union-find node per vertex id 1..N; every input edge goes into a
//     min-heap keyed by weight.
//  2. Extract the lightest edge; if its endpoints have different
//     representatives, union them. Repeat until exactly k clusters remain.
//  3. Keep extracting until an edge joins two different clusters. Its weight is
//     the spacing: the smallest distance between points in distinct clusters,
//     which this greedy order maximizes.
//
// Vertex ids are 1-based. Self-loops and parallel edges are accepted; a
// self-loop never merges anything.
//
// Complexity: O(E log E + N·α(N)). Memory: O(N + E).
package clustering
