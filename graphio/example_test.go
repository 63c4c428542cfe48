package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvlds/clustering"
	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/graphio"
)

func ExampleWriteGraph() {
	list, _ := graphio.ReadEdgeList(strings.NewReader("3  1 2 5  2 3 6"))
	g, _, _ := graphio.BuildGraph(list, core.WithDirected())
	_ = graphio.WriteGraph(os.Stdout, g, core.RenderAllEdges)
	// Output:
	// 3
	// Out: 1 2 5
	// Out: 2 3 6
	// In: 1 2 5
	// In: 2 3 6
}

func ExampleEdgeList_ClusteringEdges() {
	list, _ := graphio.ReadEdgeList(strings.NewReader("4\n1 2 1\n2 3 2\n3 4 3\n1 4 10\n"))
	res, _ := clustering.MaxSpacing(list.VertexCount, list.ClusteringEdges(), 2)
	fmt.Println(res.Spacing)
	// Output: 3
}
