// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are non-negative
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge insertion and membership via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - A second index of incoming directed edges, so predecessor queries
//     (InNeighbors, InNeighborIDs) cost O(in-degree) instead of O(E)
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// A graph is typically built once and then only read; every read method
// takes read locks, so concurrent queries are safe.
//
// Determinism:
//
//	Vertices(), NeighborIDs() and InNeighborIDs() return lexicographically
//	sorted IDs; Neighbors() and InNeighbors() return edges in
//	insertion order. Traversals built on top are therefore reproducible.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("shiny gold", "dark olive", 1)
//	_, _ = g.AddEdge("shiny gold", "vibrant plum", 2)
//	ids, _ := g.NeighborIDs("shiny gold") // [dark olive vibrant plum]
package core
