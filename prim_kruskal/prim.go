// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex using a min-heap of candidate edges.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/heap"
)

// Prim computes the Minimum Spanning Tree (MST) of a bidirectional weighted graph
// by growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil or directed.
//   - core.ErrInvalidHandle : root is not a vertex of graph.
//   - ErrDisconnected       : some vertex is unreachable from root.
//
// Steps:
//  1. Mark root visited and queue its out-edges.
//  2. Pop the lightest candidate; skip it if its sink is visited, otherwise
//     keep it, mark the sink and queue the sink's out-edges to unvisited vertices.
//  3. Fewer than |V|-1 kept edges means the graph was disconnected.
//
// Returned handles are the records walked from the tree side, so a kept edge
// may be the twin of the handle AddEdge returned.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[V any](graph *core.Graph[V, int64], root core.VertexHandle) ([]core.EdgeHandle, int64, error) {
	if graph == nil || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root: %w", core.ErrInvalidHandle)
	}

	n := graph.VertexCount()
	visited := make([]bool, n)
	pq := heap.New[weighted](heap.MinKeyed[weighted, int64]{})
	handles := map[int]core.EdgeHandle{}
	push := func(v core.VertexHandle) error {
		return graph.EachOutEdge(v, func(e core.EdgeView[V, int64]) bool {
			if !visited[e.Sink.Index()] {
				handles[e.Handle.Index()] = e.Handle
				pq.Insert(weighted{src: e.Source.Index(), sink: e.Sink.Index(), edge: e.Handle.Index(), w: e.Payload})
			}
			return true
		})
	}

	visited[root.Index()] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	var (
		mst   = make([]core.EdgeHandle, 0, n-1)
		total int64
	)
	for pq.Size() > 0 && len(mst) < n-1 {
		c, _ := pq.ExtractTop()
		if visited[c.sink] {
			continue
		}
		visited[c.sink] = true
		mst = append(mst, handles[c.edge])
		total += c.w

		sink, err := graph.VertexAt(c.sink)
		if err != nil {
			return nil, 0, err
		}
		if err = push(sink); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
