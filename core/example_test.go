package core_test

import (
	"fmt"

	"github.com/katalvlaran/bagraph/core"
)

// ExampleGraph_InNeighborIDs lists the direct containers of a bag.
func ExampleGraph_InNeighborIDs() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("bright white", "shiny gold", 1)
	_, _ = g.AddEdge("muted yellow", "shiny gold", 2)
	_, _ = g.AddEdge("shiny gold", "dark olive", 1)

	in, _ := g.InNeighborIDs("shiny gold")
	out, _ := g.NeighborIDs("shiny gold")
	fmt.Println(in)
	fmt.Println(out)

	// Output:
	// [bright white muted yellow]
	// [dark olive]
}
