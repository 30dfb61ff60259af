// Package bags resolves bag containment rules.
//
// A Graph is built once from the output of bagrule.ParseLines. Colors are
// vertices of a directed, weighted core.Graph; each rule "X holds n Y" is an
// edge X→Y of weight n. Two queries run over it:
//
//   - CountContainersOf / ContainersOf: upward reachability. A reverse BFS
//     from the target collects every color that can eventually hold it;
//     ContainmentPath reads a shortest outer → inner chain off the same walk.
//   - CountContentsOf / ContentsOf: the downward multiplicative count. An
//     iterative post-order DFS folds count(c) = Σ n·(1 + count(child))
//     bottom-up, every color computed once per query and memoized across
//     queries in an LRU cache.
//
// Undefined colors are rejected up front: New fails with *LookupError when a
// rule names a color that has no definition, so queries never meet a
// dangling edge. Downward queries fail with *CycleError when a cycle is
// reachable; upward queries terminate on cycles and count the target only
// when it can hold itself.
//
// Example:
//
//	lines, _ := input.ReadLines("rules.txt")
//	parsed, _ := bagrule.ParseLines(lines)
//	g, _ := bags.New(parsed)
//	n, _ := g.CountContainersOf(ctx, "shiny gold")
//	m, _ := g.CountContentsOf(ctx, "shiny gold")
//
// A Graph is immutable after New and safe for concurrent queries. Queries
// log at debug level through ctxlog.FromContext(ctx).
package bags
