package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlds/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_Directed(t *testing.T) {
	for _, s := range storages {
		t.Run(s.String(), func(t *testing.T) {
			g := core.NewGraph[string, int](core.WithDirected(), core.WithStorage(s))
			a, b := g.AddVertex("A"), g.AddVertex("B")
			e, err := g.AddEdge(a, b, 5)
			require.NoError(t, err)

			out, err := g.OutEdges(a)
			require.NoError(t, err)
			assert.Equal(t, []core.EdgeHandle{e}, out)
			in, err := g.InEdges(b)
			require.NoError(t, err)
			assert.Equal(t, []core.EdgeHandle{e}, in)

			out, _ = g.OutEdges(b)
			assert.Empty(t, out)
			adj, _ := g.Adjacent(a)
			assert.Equal(t, []core.VertexHandle{b}, adj)
			adj, _ = g.Adjacent(b)
			assert.Empty(t, adj)

			view, err := g.Edge(e)
			require.NoError(t, err)
			assert.Equal(t, a, view.Source)
			assert.Equal(t, b, view.Sink)
			assert.Equal(t, 5, view.Payload)

			_, ok, err := g.Twin(e)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, 1, g.EdgeCount())
			assert.Equal(t, 1, g.Stats().EdgeRecords)
		})
	}
}

func TestAddEdge_Bidirectional(t *testing.T) {
	for _, s := range storages {
		t.Run(s.String(), func(t *testing.T) {
			g := core.NewGraph[string, int](core.WithStorage(s))
			a, b := g.AddVertex("A"), g.AddVertex("B")
			e, err := g.AddEdge(a, b, 7)
			require.NoError(t, err)

			outA, _ := g.OutEdges(a)
			outB, _ := g.OutEdges(b)
			require.Len(t, outA, 1)
			require.Len(t, outB, 1)
			assert.Equal(t, e, outA[0])

			twin, ok, err := g.Twin(e)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, outB[0], twin)
			back, ok, _ := g.Twin(twin)
			assert.True(t, ok)
			assert.Equal(t, e, back)

			tv, _ := g.Edge(twin)
			assert.Equal(t, b, tv.Source)
			assert.Equal(t, a, tv.Sink)
			assert.Equal(t, 7, tv.Payload, "twins share a payload")

			adjA, _ := g.Adjacent(a)
			adjB, _ := g.Adjacent(b)
			assert.Equal(t, []core.VertexHandle{b}, adjA)
			assert.Equal(t, []core.VertexHandle{a}, adjB)

			_, err = g.InEdges(a)
			assert.ErrorIs(t, err, core.ErrInEdgesUnsupported)
			err = g.EachInEdge(a, func(core.EdgeView[string, int]) bool { return true })
			assert.ErrorIs(t, err, core.ErrInEdgesUnsupported)

			assert.Equal(t, 1, g.EdgeCount())
			assert.Equal(t, []core.EdgeHandle{e}, g.Edges())
			st := g.Stats()
			assert.Equal(t, 2, st.EdgeRecords)
			assert.Equal(t, 2, st.Vertices)
		})
	}
}

func TestInsertionOrder(t *testing.T) {
	for _, s := range storages {
		t.Run(s.String(), func(t *testing.T) {
			g := core.NewGraph[int, int](core.WithDirected(), core.WithStorage(s))
			hub := g.AddVertex(0)
			var want []int
			for i := 1; i <= 5; i++ {
				v := g.AddVertex(i)
				_, err := g.AddEdge(hub, v, i)
				require.NoError(t, err)
				want = append(want, i)
			}

			adj, err := g.Adjacent(hub)
			require.NoError(t, err)
			assert.Equal(t, want, payloads(t, g, adj))

			var weights []int
			err = g.EachOutEdge(hub, func(e core.EdgeView[int, int]) bool {
				weights = append(weights, e.Payload)
				return len(weights) < 3
			})
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, weights, "stops when fn returns false")

			assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, payloads(t, g, g.Vertices()))
		})
	}
}

func TestParallelEdgesAndSelfLoops(t *testing.T) {
	g := core.NewGraph[int, int]()
	a, b := g.AddVertex(1), g.AddVertex(2)
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(a, b, 2)
	_, err := g.AddEdge(a, a, 3)
	require.NoError(t, err)

	adj, _ := g.Adjacent(a)
	assert.Equal(t, []int{2, 2, 1, 1}, payloads(t, g, adj))
	in, out, err := g.Degree(a)
	require.NoError(t, err)
	assert.Equal(t, 4, out)
	assert.Equal(t, out, in)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestDegree_Directed(t *testing.T) {
	g, vs := buildChain(t, 3, core.WithDirected())
	in, out, err := g.Degree(vs[1])
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)
	in, out, _ = g.Degree(vs[0])
	assert.Equal(t, 0, in)
	assert.Equal(t, 1, out)
}

func TestEachVertex_EarlyStop(t *testing.T) {
	g, _ := buildChain(t, 4)
	var seen []int
	g.EachVertex(func(_ core.VertexHandle, p int) bool {
		seen = append(seen, p)
		return p < 2
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestClone_Independent(t *testing.T) {
	for _, s := range storages {
		t.Run(s.String(), func(t *testing.T) {
			g, vs := buildChain(t, 3, core.WithDirected(), core.WithStorage(s))
			c := g.Clone()
			assert.Equal(t, g.Stats(), c.Stats())

			before, err := core.RenderString(g, core.RenderAllEdges)
			require.NoError(t, err)
			cloned, err := core.RenderString(c, core.RenderAllEdges)
			require.NoError(t, err)
			assert.Equal(t, before, cloned)

			// Handles are bound to their graph.
			_, err = c.Vertex(vs[0])
			assert.ErrorIs(t, err, core.ErrInvalidHandle)

			c0, err := c.VertexAt(vs[0].Index())
			require.NoError(t, err)
			x := c.AddVertex(99)
			_, err = c.AddEdge(c0, x, 1)
			require.NoError(t, err)

			after, _ := core.RenderString(g, core.RenderAllEdges)
			assert.Equal(t, before, after, "mutating the clone leaves the source intact")
			assert.Equal(t, 3, g.VertexCount())
		})
	}
}
