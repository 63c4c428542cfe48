// Package lvlds is a small collection of generic in-memory data structures and
// the tools built on them.
//
// Packages:
//
//	heap/        - binary priority queue generic over an ordering Policy
//	unionfind/   - disjoint-set forest: union by rank, path-compressed find
//	core/        - Graph[V, E]: vertex/edge arenas, stable handles, directed or
//	               bidirectional, dense or linked adjacency storage, rendering
//	bfs/         - breadth-first search over core.Graph
//	dfs/         - depth-first search and topological sort
//	dijkstra/    - single-source shortest paths on int64 weights
//	prim_kruskal/ - minimum spanning trees
//	clustering/  - max-spacing k-clustering from heap + unionfind
//	graphio/     - edge-list reader, graph builder, rendered-text writer/parser
//
// The lvlds command (cmd/lvlds) exposes the drivers:
//
//	lvlds cluster [file] -k 4              max spacing of a k-clustering
//	lvlds graph   [file] --mode all-edges  vertex count then the rendered graph
//	lvlds bfs     [file] --from 1          breadth-first order with depths
//	lvlds dfs     [file] --topological     depth-first or topological order
//	lvlds path    [file] --from 1 --to 5   shortest distances or one path
//	lvlds heap    [--max] [--count 10]     heap smoke test
//
// Containers are not safe for concurrent mutation. Handles from one container
// are rejected by every other.
package lvlds
