package clustering_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/clustering"
)

func ExampleMaxSpacing() {
	edges := []clustering.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 3},
		{U: 1, V: 4, Weight: 10},
	}
	res, err := clustering.MaxSpacing(4, edges, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Spacing, res.Clusters)
	// Output: 3 [[1 2 3] [4]]
}
