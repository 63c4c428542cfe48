// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes a bidirectional core.Graph with int64 edge weights.
package prim_kruskal

import (
	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/heap"
	"github.com/katalvlaran/lvlds/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of a bidirectional weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or directed.
//   - ErrDisconnected : |V| == 0, or the graph is not fully connected.
//
// Steps:
//  1. Validate; a single vertex yields an empty MST.
//  2. Push one candidate per logical edge (self-loops skipped) into a min-heap.
//  3. Pop candidates; when the endpoints have different representatives,
//     union them and keep the edge.
//  4. Stop at |V|-1 edges; fewer means the graph was disconnected.
//
// Equal weights resolve in heap order, which is fixed for a given insertion order.
// Complexity: O(E log E + E·α(V)). Memory: O(E + V).
func Kruskal[V any](graph *core.Graph[V, int64]) ([]core.EdgeHandle, int64, error) {
	if graph == nil || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.EdgeHandle{}, 0, nil
	}

	edges := graph.Edges()
	pq := heap.New[weighted](heap.MinKeyed[weighted, int64]{}, heap.WithCapacity(len(edges)))
	for i, h := range edges {
		e, err := graph.Edge(h)
		if err != nil {
			return nil, 0, err
		}
		if e.Source == e.Sink {
			continue
		}
		pq.Insert(weighted{src: e.Source.Index(), sink: e.Sink.Index(), edge: i, w: e.Payload})
	}

	uf := unionfind.New[int](unionfind.WithCapacity(n))
	nodes := make([]unionfind.NodeHandle, n)
	for i := range nodes {
		nodes[i] = uf.AddNode(i)
	}

	var (
		mst   = make([]core.EdgeHandle, 0, n-1)
		total int64
	)
	for pq.Size() > 0 && len(mst) < n-1 {
		c, _ := pq.ExtractTop()
		ru, err := uf.Find(nodes[c.src])
		if err != nil {
			return nil, 0, err
		}
		rv, err := uf.Find(nodes[c.sink])
		if err != nil {
			return nil, 0, err
		}
		if ru == rv {
			continue
		}
		if _, err = uf.Union(ru, rv); err != nil {
			return nil, 0, err
		}
		mst = append(mst, edges[c.edge])
		total += c.w
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
