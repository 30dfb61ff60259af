// Package dfs implements cycle detection for directed and undirected core.Graphs.
//
// DetectCycles runs a forest DFS and records the cycle closed by every back
// edge (an edge into a vertex that is still on the current path). Each cycle
// is reported in canonical form so the same cycle found from different roots
// collapses to one entry, and the final list is sorted for deterministic
// output. Every cycle in the graph shares at least one vertex with a
// reported cycle, so an empty result means the graph is acyclic.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #back edges, L = avg cycle length)
//   - Memory: O(V + C·L)
package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/bagraph/core"
)

// DetectCycles inspects graph g for cycles closed by DFS back edges.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// If a neighbor-fetch error occurs, returns (false, nil, error).
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	n := g.VertexCount()
	seen := make(map[string]struct{})
	var cycles [][]string

	walker := &dfsWalker{
		graph: g,
		opts:  DefaultOptions(),
		res: &DFSResult{
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
		state: make(map[string]int, n),
		onBackEdge: func(cycle []string) {
			canon := canonical(cycle, g.Directed())
			sig := strings.Join(canon, ",")
			if _, dup := seen[sig]; dup {
				return
			}
			seen[sig] = struct{}{}
			cycles = append(cycles, canon)
		},
	}

	for _, v := range g.Vertices() {
		if walker.state[v] == White {
			if err := walker.traverse(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	if len(cycles) == 0 {
		return false, nil, nil
	}

	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})

	return true, cycles, nil
}

// canonical rotates the closed cycle [v0 ... vk v0] so that its smallest
// vertex comes first. For undirected graphs the reversed walk is the same
// cycle, so the lexicographically smaller of both directions is kept.
// The result is closed again (first vertex repeated at the end).
func canonical(cycle []string, directed bool) []string {
	base := cycle[:len(cycle)-1]
	best := rotateToMin(base)
	if !directed {
		rev := make([]string, len(base))
		for i := range base {
			rev[i] = base[len(base)-1-i]
		}
		if r := rotateToMin(rev); lessSeq(r, best) {
			best = r
		}
	}

	return append(best, best[0])
}

// rotateToMin returns a copy of s rotated so its minimal element is first.
// Vertices of a simple cycle are distinct, so the rotation is unique.
func rotateToMin(s []string) []string {
	m := 0
	for i := range s {
		if s[i] < s[m] {
			m = i
		}
	}
	out := make([]string, 0, len(s)+1)
	out = append(out, s[m:]...)

	return append(out, s[:m]...)
}

// lessSeq compares two equal-length sequences lexicographically.
func lessSeq(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
