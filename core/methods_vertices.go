// File: methods_vertices.go
// Role: vertex creation, lookup and enumeration.
package core

import "fmt"

// AddVertex stores payload in a new vertex with empty lists and returns its
// handle. Handles are issued in insertion order.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(payload V) VertexHandle {
	v := vertex[V]{
		payload:  payload,
		out:      newIndexList(g.storage),
		adjacent: newIndexList(g.storage),
	}
	if g.directed {
		v.in = newIndexList(g.storage)
	}
	g.vertices = append(g.vertices, v)

	return g.vertexHandle(len(g.vertices) - 1)
}

// Vertex returns the payload stored at v.
func (g *Graph[V, E]) Vertex(v VertexHandle) (V, error) {
	if err := g.checkVertex(v); err != nil {
		var zero V
		return zero, err
	}

	return g.vertices[v.index].payload, nil
}

// Vertices returns every vertex handle in insertion order.
func (g *Graph[V, E]) Vertices() []VertexHandle {
	out := make([]VertexHandle, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertexHandle(i)
	}

	return out
}

// EachVertex calls fn for every vertex in insertion order until fn returns false.
func (g *Graph[V, E]) EachVertex(fn func(h VertexHandle, payload V) bool) {
	for i := range g.vertices {
		if !fn(g.vertexHandle(i), g.vertices[i].payload) {
			return
		}
	}
}

// HasVertex reports whether v is a live handle of g.
func (g *Graph[V, E]) HasVertex(v VertexHandle) bool { return g.checkVertex(v) == nil }

// Degree returns the in- and out-degree of v. On bidirectional graphs in equals
// out, since every incident edge has a record on v's out-list.
func (g *Graph[V, E]) Degree(v VertexHandle) (in, out int, err error) {
	if err = g.checkVertex(v); err != nil {
		return 0, 0, err
	}
	rec := g.vertices[v.index]
	out = rec.out.Len()
	if rec.in == nil {
		return out, out, nil
	}

	return rec.in.Len(), out, nil
}

func (g *Graph[V, E]) vertexHandle(i int) VertexHandle {
	return VertexHandle{owner: g.id, index: i}
}

func (g *Graph[V, E]) checkVertex(v VertexHandle) error {
	if v.owner != g.id || v.index < 0 || v.index >= len(g.vertices) {
		return fmt.Errorf("%w: vertex %+v", ErrInvalidHandle, v)
	}

	return nil
}
