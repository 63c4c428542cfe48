package graphio

import "github.com/katalvlaran/lvlds/core"

// BuildGraph creates vertices 1..N, in order, then one edge per triple.
// handles[i] is the vertex carrying id i+1.
func BuildGraph(list *EdgeList, opts ...core.GraphOption) (*core.Graph[int, int64], []core.VertexHandle, error) {
	opts = append([]core.GraphOption{
		core.WithVertexCapacity(list.VertexCount),
		core.WithEdgeCapacity(len(list.Edges)),
	}, opts...)
	g := core.NewGraph[int, int64](opts...)

	handles := make([]core.VertexHandle, list.VertexCount)
	for i := range handles {
		handles[i] = g.AddVertex(i + 1)
	}
	for i, t := range list.Edges {
		if err := checkRange(t, list.VertexCount, i); err != nil {
			return nil, nil, err
		}
		if _, err := g.AddEdge(handles[t.U-1], handles[t.V-1], t.Weight); err != nil {
			return nil, nil, err
		}
	}

	return g, handles, nil
}
