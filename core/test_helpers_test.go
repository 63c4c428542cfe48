package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlds/core"
	"github.com/stretchr/testify/require"
)

// storages lists every storage discipline; table tests run against each.
var storages = []core.Storage{core.StorageDense, core.StorageList}

// buildChain creates vertices 1..n and edges i -> i+1 carrying weight 10*i.
func buildChain(t *testing.T, n int, opts ...core.GraphOption) (*core.Graph[int, int], []core.VertexHandle) {
	t.Helper()
	g := core.NewGraph[int, int](opts...)
	vs := make([]core.VertexHandle, n)
	for i := range vs {
		vs[i] = g.AddVertex(i + 1)
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(vs[i], vs[i+1], 10*(i+1))
		require.NoError(t, err)
	}

	return g, vs
}

// payloads maps vertex handles to their payloads.
func payloads(t *testing.T, g *core.Graph[int, int], hs []core.VertexHandle) []int {
	t.Helper()
	out := make([]int, len(hs))
	for i, h := range hs {
		p, err := g.Vertex(h)
		require.NoError(t, err)
		out[i] = p
	}

	return out
}
