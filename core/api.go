// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of catalog sizes and the total edge weight.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot the vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and sum weights, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		stats.TotalWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return stats
}
