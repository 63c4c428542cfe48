package graphio

import (
	"errors"

	"github.com/katalvlaran/lvlds/clustering"
)

// Sentinel errors for reading edge lists.
var (
	// ErrMissingVertexCount indicates input without a leading vertex count.
	ErrMissingVertexCount = errors.New("graphio: missing vertex count")

	// ErrTruncatedTriple indicates trailing tokens that do not form a full (u v w) triple.
	ErrTruncatedTriple = errors.New("graphio: truncated edge triple")

	// ErrBadToken indicates a token that is not a valid integer in its position.
	ErrBadToken = errors.New("graphio: malformed token")

	// ErrVertexOutOfRange indicates an endpoint outside 1..N.
	ErrVertexOutOfRange = errors.New("graphio: vertex id out of range")
)

// Triple is one (u v w) record of an edge list.
type Triple struct {
	U, V   int
	Weight int64
}

// EdgeList is a parsed edge-list document.
type EdgeList struct {
	VertexCount int
	Edges       []Triple
}

// ClusteringEdges converts the triples for clustering.MaxSpacing.
func (l *EdgeList) ClusteringEdges() []clustering.Edge {
	out := make([]clustering.Edge, len(l.Edges))
	for i, t := range l.Edges {
		out[i] = clustering.Edge{U: t.U, V: t.V, Weight: t.Weight}
	}

	return out
}
