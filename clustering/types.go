package clustering

import "errors"

// Sentinel errors for MaxSpacing.
var (
	// ErrBadClusterCount indicates k < 1 or k > vertex count.
	ErrBadClusterCount = errors.New("clustering: cluster count out of range")

	// ErrVertexOutOfRange indicates an edge endpoint outside 1..N.
	ErrVertexOutOfRange = errors.New("clustering: vertex id out of range")

	// ErrNotEnoughEdges indicates the edges ran out before k clusters formed.
	ErrNotEnoughEdges = errors.New("clustering: not enough edges to reach k clusters")

	// ErrNoSpacing indicates no remaining edge joins two different clusters.
	ErrNoSpacing = errors.New("clustering: no edge crosses clusters")
)

// Edge is an undirected weighted edge between 1-based vertex ids U and V.
type Edge struct {
	U, V   int
	Weight int64
}

// Key orders edges by weight in the heap.
func (e Edge) Key() int64 { return e.Weight }

// Result is the outcome of MaxSpacing.
type Result struct {
	// Spacing is the weight of the first edge joining two different clusters
	// once k clusters remain.
	Spacing int64
	// Clusters holds the vertex ids of each cluster, ascending, ordered by the
	// smallest member.
	Clusters [][]int
	// Merges lists the edges that joined clusters, in merge order.
	Merges []Edge
}
