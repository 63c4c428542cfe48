package core

// Directed reports whether g was built with WithDirected.
func (g *Graph[V, E]) Directed() bool { return g.directed }

// Storage returns the list discipline g was built with.
func (g *Graph[V, E]) Storage() Storage { return g.storage }

// VertexCount returns the number of vertices.
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of logical edges, one per successful AddEdge.
func (g *Graph[V, E]) EdgeCount() int { return len(g.payloads) }

// Stats summarizes a Graph.
type Stats struct {
	Directed    bool
	Storage     Storage
	Vertices    int
	Edges       int // logical edges
	EdgeRecords int // twins counted separately
}

// Stats returns a snapshot of g's size and configuration.
func (g *Graph[V, E]) Stats() Stats {
	return Stats{
		Directed:    g.directed,
		Storage:     g.storage,
		Vertices:    len(g.vertices),
		Edges:       len(g.payloads),
		EdgeRecords: len(g.edges),
	}
}
