package core_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlds/core"
)

// ExampleRender shows the node and edge renderings of a small directed graph.
func ExampleRender() {
	g := core.NewGraph[string, int](core.WithDirected())
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, c, 2)

	_ = core.Render(os.Stdout, g, core.RenderNodes)
	_ = core.Render(os.Stdout, g, core.RenderAllEdges)
	// Output:
	// A B
	// B C
	// C
	// Out: A B 1
	// Out: B C 2
	// In: A B 1
	// In: B C 2
}

// ExampleGraph_Twin walks from an edge to its mirrored record.
func ExampleGraph_Twin() {
	g := core.NewGraph[string, float64]()
	kyiv, lviv := g.AddVertex("Kyiv"), g.AddVertex("Lviv")
	e, _ := g.AddEdge(kyiv, lviv, 540)

	twin, _, _ := g.Twin(e)
	v, _ := g.Edge(twin)
	src, _ := g.Vertex(v.Source)
	dst, _ := g.Vertex(v.Sink)
	fmt.Println(src, "->", dst, v.Payload, g.EdgeCount())
	// Output: Lviv -> Kyiv 540 1
}
