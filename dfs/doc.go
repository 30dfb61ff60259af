// Package dfs implements depth‑first search traversal and cycle detection on
// a core.Graph, supporting both directed and undirected graphs.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre‑order and post‑order hooks (OnVisit / OnExit)
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - WithFailOnCycle, which stops at the first back edge and reports it
//     as a *CycleError carrying the closed path
//   - DetectCycles: lists the cycles closed by back edges in directed or
//     undirected graphs, using vertex coloring (White, Gray, Black) and
//     canonical rotation for deduplication.
//
// The walker keeps an explicit stack, so very long chains (a bag inside a
// bag inside a bag, thousands deep) do not grow the goroutine stack.
//
// Post-order is the natural evaluation order for bottom-up aggregates: when
// OnExit(v) fires, every successor of v has already exited. Package bags
// uses this to total the contents of a bag from its leaves upwards.
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - DetectCycles:   Time O(V+E + C*L), Memory O(V + C*L)
//     (C=#back edges, L=avg cycle length)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        wrapped by *CycleError under WithFailOnCycle
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
