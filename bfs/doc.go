// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex handle → distance (edges) from start
//   - Parent: map from vertex handle → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual adjacency entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Direction
//
//	BFS walks adjacency lists. On a directed graph a vertex lists only the
//	sinks of its out-edges; on a bidirectional graph both endpoints list each
//	other, so the traversal covers the whole connected component.
//
// Determinism
//
//	Adjacency lists keep insertion order under both storage disciplines, and
//	BFS enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v core.VertexHandle, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start handle is not a vertex of the graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if adjacency lookup fails for any vertex.
//   - ErrNoPath               from PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
