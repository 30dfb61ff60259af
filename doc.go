// Package bagraph resolves bag containment rules: which bags can end up
// holding a given bag, and how many bags a given bag holds in total.
//
// 🚀 What is bagraph?
//
//	A small, thread-safe graph toolkit and the resolver built on it:
//		• Parsing: "<color> bags contain <rules>." lines into typed rules
//		• Core primitives: directed, weighted graph store under R/W locks
//		• Traversals: BFS (forward and reverse), iterative DFS with cycle detection
//		• Queries: upward reachability and the multiplicative content count
//
// Under the hood, everything is organized under these subpackages:
//
//	bagrule/ - Rule/Bag model, line parser, canonical rendering
//	bags/    - the containment graph and both queries, with an LRU memo
//	core/    - fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/     - breadth-first search with filters, reverse walks and parent paths
//	dfs/     - depth-first search, post-order hooks, cycle detection
//	input/   - line reader (trimmed, non-empty lines)
//	ctxlog/  - slog.Logger carried in context.Context
//	config/  - flags, BAGS_* environment and .env for the driver
//	cmd/bags - the command-line driver
//
// Quick ASCII example:
//
//	light red ──1──▶ bright white ──1──▶ shiny gold ──2──▶ vibrant plum
//
//	shiny gold has 2 containers; one light red bag holds 1 + 1 + 2 = 4 bags.
//
// Usage:
//
//	go run ./cmd/bags -target "shiny gold" rules.txt
package bagraph
