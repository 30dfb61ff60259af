// Package bfs implements breadth-first search over a core.Graph.
//
// A walk starts at one vertex and discovers the others in order of hop
// count, recording for each its depth and the vertex it was discovered
// from. PathTo turns those parent links into a shortest chain.
//
// Options
//
//   - WithReverse follows edges backwards. On a containment graph, where an
//     edge runs from the outer bag to the inner one, a reverse walk from a
//     color finds every bag that can end up holding it.
//   - WithFilterNeighbor sees every edge of a dequeued vertex, including
//     edges into vertices already discovered, and may drop it.
//   - WithContext makes the walk stop with ctx.Err() once ctx is done.
//
// Determinism
//
//	Neighbor IDs come sorted from core, so Order, Depth and Parent are the
//	same on every run over the same graph.
//
// Complexity (V vertices, E edges)
//
//   - Time:   O(V + E log d) for the sorted neighbor lists.
//   - Memory: O(V)
//
// Usage
//
//	// shortest chain of bags that ends up holding "shiny gold"
//	res, err := bfs.BFS(g, "shiny gold", bfs.WithReverse(), bfs.WithContext(ctx))
//	path, err := res.PathTo("light red") // [shiny gold bright white light red]
package bfs
