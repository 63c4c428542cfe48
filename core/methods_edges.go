// File: methods_edges.go
// Role: edge creation and edge-list access.
//
// Directed:       AddEdge(A,B,p) -> record A→B on A.out and B.in; A.adjacent += B.
// Bidirectional:  AddEdge(A,B,p) -> records A→B on A.out and B→A on B.out, one
//                 shared payload slot; A.adjacent += B, B.adjacent += A.
package core

import "fmt"

// AddEdge connects src to sink carrying payload and returns the handle of the
// src-side record. Self-loops and parallel edges are allowed.
//
// Errors:
//   - ErrInvalidHandle: src or sink is not a live vertex handle of g.
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(src, sink VertexHandle, payload E) (EdgeHandle, error) {
	if err := g.checkVertex(src); err != nil {
		return EdgeHandle{}, err
	}
	if err := g.checkVertex(sink); err != nil {
		return EdgeHandle{}, err
	}

	slot := len(g.payloads)
	g.payloads = append(g.payloads, payload)

	fwd := len(g.edges)
	g.edges = append(g.edges, edge{source: src.index, sink: sink.index, slot: slot, twin: -1})
	a, b := &g.vertices[src.index], &g.vertices[sink.index]
	a.out.Append(fwd)
	a.adjacent.Append(sink.index)

	if g.directed {
		b.in.Append(fwd)
		return g.edgeHandle(fwd), nil
	}

	back := len(g.edges)
	g.edges = append(g.edges, edge{source: sink.index, sink: src.index, slot: slot, twin: fwd, mirror: true})
	g.edges[fwd].twin = back
	b.out.Append(back)
	b.adjacent.Append(src.index)

	return g.edgeHandle(fwd), nil
}

// Edge returns a snapshot of the record behind e.
func (g *Graph[V, E]) Edge(e EdgeHandle) (EdgeView[V, E], error) {
	if err := g.checkEdge(e); err != nil {
		return EdgeView[V, E]{}, err
	}

	return g.view(e.index), nil
}

// Twin returns the opposite record of a bidirectional pair. ok is false on
// directed graphs.
func (g *Graph[V, E]) Twin(e EdgeHandle) (twin EdgeHandle, ok bool, err error) {
	if err = g.checkEdge(e); err != nil {
		return EdgeHandle{}, false, err
	}
	t := g.edges[e.index].twin
	if t < 0 {
		return EdgeHandle{}, false, nil
	}

	return g.edgeHandle(t), true, nil
}

// Edges returns one handle per AddEdge call, in creation order. Sink-side twins
// of bidirectional pairs are skipped.
func (g *Graph[V, E]) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, len(g.payloads))
	for i, rec := range g.edges {
		if !rec.mirror {
			out = append(out, g.edgeHandle(i))
		}
	}

	return out
}

// OutEdges returns v's out-list in insertion order.
func (g *Graph[V, E]) OutEdges(v VertexHandle) ([]EdgeHandle, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return collect(g.vertices[v.index].out, g.edgeHandle), nil
}

// InEdges returns v's in-list in insertion order.
// Bidirectional graphs return ErrInEdgesUnsupported.
func (g *Graph[V, E]) InEdges(v VertexHandle) ([]EdgeHandle, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	if !g.directed {
		return nil, ErrInEdgesUnsupported
	}

	return collect(g.vertices[v.index].in, g.edgeHandle), nil
}

// EachOutEdge calls fn for each record on v's out-list until fn returns false.
func (g *Graph[V, E]) EachOutEdge(v VertexHandle, fn func(EdgeView[V, E]) bool) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.vertices[v.index].out.Each(func(i int) bool { return fn(g.view(i)) })

	return nil
}

// EachInEdge calls fn for each record on v's in-list until fn returns false.
func (g *Graph[V, E]) EachInEdge(v VertexHandle, fn func(EdgeView[V, E]) bool) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return ErrInEdgesUnsupported
	}
	g.vertices[v.index].in.Each(func(i int) bool { return fn(g.view(i)) })

	return nil
}

func (g *Graph[V, E]) view(i int) EdgeView[V, E] {
	rec := g.edges[i]
	return EdgeView[V, E]{
		Handle:  g.edgeHandle(i),
		Source:  g.vertexHandle(rec.source),
		Sink:    g.vertexHandle(rec.sink),
		Payload: g.payloads[rec.slot],
	}
}

func (g *Graph[V, E]) edgeHandle(i int) EdgeHandle {
	return EdgeHandle{owner: g.id, index: i}
}

func (g *Graph[V, E]) checkEdge(e EdgeHandle) error {
	if e.owner != g.id || e.index < 0 || e.index >= len(g.edges) {
		return fmt.Errorf("%w: edge %+v", ErrInvalidHandle, e)
	}

	return nil
}
