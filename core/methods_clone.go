package core

// Clone returns an independent copy of g with the same configuration, payloads
// and list order. Handles of g are not valid on the clone; use Index to map them.
// Payloads are copied by assignment.
// Complexity: O(V+E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	c := &Graph[V, E]{
		id:       nextGraphID(),
		directed: g.directed,
		storage:  g.storage,
		vertices: make([]vertex[V], len(g.vertices)),
		edges:    append([]edge(nil), g.edges...),
		payloads: append([]E(nil), g.payloads...),
	}
	for i, v := range g.vertices {
		cv := vertex[V]{
			payload:  v.payload,
			out:      v.out.Clone(),
			adjacent: v.adjacent.Clone(),
		}
		if v.in != nil {
			cv.in = v.in.Clone()
		}
		c.vertices[i] = cv
	}

	return c
}

// VertexAt returns the handle of the i-th inserted vertex.
func (g *Graph[V, E]) VertexAt(i int) (VertexHandle, error) {
	h := g.vertexHandle(i)
	if err := g.checkVertex(h); err != nil {
		return VertexHandle{}, err
	}

	return h, nil
}
