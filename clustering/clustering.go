package clustering

import (
	"fmt"

	"github.com/katalvlaran/lvlds/heap"
	"github.com/katalvlaran/lvlds/unionfind"
)

// MaxSpacing groups vertices 1..vertexCount into k clusters by merging along the
// lightest edges and reports the resulting spacing.
//
// Error Conditions:
//   - ErrBadClusterCount  : k < 1 or k > vertexCount.
//   - ErrVertexOutOfRange : an endpoint is outside 1..vertexCount.
//   - ErrNotEnoughEdges   : the heap empties while more than k clusters remain.
//   - ErrNoSpacing        : k clusters formed but no remaining edge crosses them.
//
// Steps:
//  1. Validate k and every endpoint.
//  2. Create one union-find node per vertex; push every edge into a min-heap.
//  3. While SetCount() > k: extract, Find both endpoints, Union when they differ.
//  4. Extract until Find(u) != Find(v); that edge's weight is the spacing.
func MaxSpacing(vertexCount int, edges []Edge, k int) (*Result, error) {
	// 1. Validate.
	if k < 1 || k > vertexCount {
		return nil, fmt.Errorf("%w: k=%d, vertices=%d", ErrBadClusterCount, k, vertexCount)
	}
	for i, e := range edges {
		if e.U < 1 || e.U > vertexCount || e.V < 1 || e.V > vertexCount {
			return nil, fmt.Errorf("%w: edge %d (%d,%d), vertices=%d", ErrVertexOutOfRange, i, e.U, e.V, vertexCount)
		}
	}

	// 2. Build forest and queue.
	uf := unionfind.New[int](unionfind.WithCapacity(vertexCount))
	nodes := make([]unionfind.NodeHandle, vertexCount+1) // 1-based
	for id := 1; id <= vertexCount; id++ {
		nodes[id] = uf.AddNode(id)
	}
	pq := heap.New[Edge](heap.MinKeyed[Edge, int64]{}, heap.WithCapacity(len(edges)))
	for _, e := range edges {
		pq.Insert(e)
	}

	// 3. Merge down to k clusters.
	var merges []Edge
	for uf.SetCount() > k {
		e, err := pq.ExtractTop()
		if err != nil {
			return nil, fmt.Errorf("%w: %d clusters left, want %d", ErrNotEnoughEdges, uf.SetCount(), k)
		}
		ru, rv, err := roots(uf, nodes[e.U], nodes[e.V])
		if err != nil {
			return nil, err
		}
		if ru == rv {
			continue
		}
		if _, err = uf.Union(ru, rv); err != nil {
			return nil, err
		}
		merges = append(merges, e)
	}

	// 4. First crossing edge.
	for {
		e, err := pq.ExtractTop()
		if err != nil {
			return nil, fmt.Errorf("%w: k=%d", ErrNoSpacing, k)
		}
		ru, rv, err := roots(uf, nodes[e.U], nodes[e.V])
		if err != nil {
			return nil, err
		}
		if ru != rv {
			return &Result{Spacing: e.Weight, Clusters: clusters(uf), Merges: merges}, nil
		}
	}
}

func roots(uf *unionfind.UnionFind[int], a, b unionfind.NodeHandle) (ra, rb unionfind.NodeHandle, err error) {
	if ra, err = uf.Find(a); err != nil {
		return
	}
	rb, err = uf.Find(b)

	return
}

// clusters converts union-find groups to vertex ids. Groups come ordered by
// smallest member with members ascending, and node index i holds id i+1.
func clusters(uf *unionfind.UnionFind[int]) [][]int {
	groups := uf.Groups()
	out := make([][]int, len(groups))
	for i, g := range groups {
		ids := make([]int, len(g))
		for j, h := range g {
			ids[j] = h.Index() + 1
		}
		out[i] = ids
	}

	return out
}
