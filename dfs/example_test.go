package dfs_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bagraph/core"
	"github.com/katalvlaran/bagraph/dfs"
)

// ExampleDFS prints the post-order of a bag hierarchy: every bag finishes
// only after everything it holds has finished.
//
//	shiny gold
//	 /      \
//	dark olive  vibrant plum
//	 \      /
//	  faded blue
func ExampleDFS() {
	g := core.NewGraph(core.WithDirected(true))
	for _, edge := range []struct{ U, V string }{
		{"shiny gold", "dark olive"},
		{"shiny gold", "vibrant plum"},
		{"dark olive", "faded blue"},
		{"vibrant plum", "faded blue"},
	} {
		_, _ = g.AddEdge(edge.U, edge.V, 0)
	}

	res, err := dfs.DFS(g, "shiny gold", dfs.WithFailOnCycle())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, ", "))

	// Output:
	// faded blue, dark olive, vibrant plum, shiny gold
}

// ExampleWithFailOnCycle shows the path reported when a walk meets a cycle.
func ExampleWithFailOnCycle() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "B", 0)

	_, err := dfs.DFS(g, "A", dfs.WithFailOnCycle())
	var ce *dfs.CycleError
	if errors.As(err, &ce) {
		fmt.Println(ce.Path)
	}
	fmt.Println(errors.Is(err, dfs.ErrCycleDetected))

	// Output:
	// [B C B]
	// true
}

// ExampleDetectCycles reports the single cycle hidden behind a long tail.
func ExampleDetectCycles() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("C", "E", 0)
	_, _ = g.AddEdge("D", "H", 0)
	_, _ = g.AddEdge("H", "I", 0)
	_, _ = g.AddEdge("I", "J", 0)
	_, _ = g.AddEdge("J", "K", 0)
	_, _ = g.AddEdge("K", "B", 0) // closes the cycle back to B

	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(has)
	for _, cyc := range cycles {
		fmt.Println(strings.Join(cyc, " -> "))
	}

	// Output:
	// true
	// B -> D -> H -> I -> J -> K -> B
}
