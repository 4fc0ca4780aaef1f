package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// ExampleBuild builds a 3x3 grid with unit weights: every spanning tree of it
// has 8 edges and weight 8.
func ExampleBuild() {
	g, _, err := builder.Build(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	forest, total, _ := prim_kruskal.Prim(g.Nodes(), g.Edges())
	fmt.Println(g.NodeCount(), g.EdgeCount(), len(forest), total)
	// Output: 9 12 8 8
}
