package core

// Adjacent returns v's adjacency list in insertion order. Repeated neighbors
// appear once per connecting edge.
func (g *Graph[V, E]) Adjacent(v VertexHandle) ([]VertexHandle, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return collect(g.vertices[v.index].adjacent, g.vertexHandle), nil
}

// EachAdjacent calls fn for each entry of v's adjacency list until fn returns false.
func (g *Graph[V, E]) EachAdjacent(v VertexHandle, fn func(u VertexHandle) bool) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.vertices[v.index].adjacent.Each(func(i int) bool { return fn(g.vertexHandle(i)) })

	return nil
}
