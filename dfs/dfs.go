// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
//
// The walker keeps its own stack of frames instead of recursing, so the Go
// stack does not grow with the length of the longest path.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - WithFailOnCycle: stop at the first back edge with the offending path
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - *CycleError               on a back edge when WithFailOnCycle is set.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/bagraph/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id    string
	depth int
	nbrs  []string // successors, fetched once on entry
	next  int      // index of the next successor to examine
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	state map[string]int
	stack []frame

	// onBackEdge, if set, receives every cycle closed by a back edge and
	// the walk continues; it takes precedence over FailOnCycle.
	onBackEdge func(cycle []string)
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Returns DFSResult or error if aborted by context, hook or cycle.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	walker := &dfsWalker{
		graph: g,
		opts:  dopts,
		res:   res,
		state: make(map[string]int, n),
	}

	if dopts.FullTraversal {
		for _, v := range g.Vertices() {
			if !res.Visited[v] {
				if err := walker.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(startID); err != nil {
			return res, err
		}
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse explores the tree rooted at root until the stack drains.
func (w *dfsWalker) traverse(root string) error {
	if err := w.enter(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			if err := w.exit(); err != nil {
				return err
			}
			continue
		}

		nid := top.nbrs[top.next]
		top.next++
		if err := w.examine(top.id, top.depth, nid); err != nil {
			return err
		}
	}

	return nil
}

// examine handles the edge id→nid found while exploring id at depth.
func (w *dfsWalker) examine(id string, depth int, nid string) error {
	// Skip self‑loops if disallowed
	if nid == id && !w.graph.Looped() {
		return nil
	}

	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
		w.opts.SkippedNeighbors++
		return nil
	}

	switch w.state[nid] {
	case White:
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			return nil
		}
		w.res.Parent[nid] = id
		return w.enter(nid, depth+1)
	case Gray:
		if w.onBackEdge == nil && !w.opts.FailOnCycle {
			return nil
		}
		// In an undirected graph the edge back to the tree parent is not a cycle.
		if !w.graph.Directed() && w.res.Parent[id] == nid {
			return nil
		}
		if w.onBackEdge != nil {
			w.onBackEdge(w.cycleTo(nid))
			return nil
		}
		return &CycleError{Path: w.cycleTo(nid)}
	}

	return nil
}

// enter marks id Gray, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) enter(id string, depth int) error {
	w.state[id] = Gray
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}

// exit pops the top frame, runs the post-order hook and records the finish order.
func (w *dfsWalker) exit() error {
	id := w.stack[len(w.stack)-1].id
	w.stack = w.stack[:len(w.stack)-1]

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.state[id] = Black
	w.res.Order = append(w.res.Order, id)

	return nil
}

// cycleTo returns the closed path from start (which must be on the stack)
// to the current top, followed by start again.
func (w *dfsWalker) cycleTo(start string) []string {
	i := len(w.stack) - 1
	for i > 0 && w.stack[i].id != start {
		i--
	}
	path := make([]string, 0, len(w.stack)-i+1)
	for _, f := range w.stack[i:] {
		path = append(path, f.id)
	}

	return append(path, start)
}
