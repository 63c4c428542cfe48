// Package prim_kruskal defines errors shared by the Prim and Kruskal minimum
// spanning tree builders.
package prim_kruskal

import "errors"

// ErrInvalidGraph indicates that MST algorithms require a bidirectional graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil bidirectional graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree cannot cover every vertex.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// weighted is a queued candidate edge.
type weighted struct {
	src, sink int // vertex indices
	edge      int // edge index in the graph, for the result
	w         int64
}

// Key orders candidates by weight.
func (e weighted) Key() int64 { return e.w }
