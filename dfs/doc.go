// Package dfs implements depth-first search and topological sort on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - TopologicalSort(g): reverse post-order of a directed graph, ErrCycleDetected on back edges
//   - Cancellation via context.Context
//
// DFS walks adjacency lists, so on a bidirectional graph it covers the whole
// component. TopologicalSort walks out-edges and needs a directed graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs
