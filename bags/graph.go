// File: graph.go
// Role: Graph construction and read-only accessors.
//
// Representation:
//   - core.Graph, directed + weighted + multi-edges + loops.
//   - Vertex = bag color; edge outer→inner with Weight = rule count.
//   - A rule list naming the same color twice yields parallel edges whose
//     weights add up in every count.
//
// Concurrency:
//   - Immutable after New; the memo is the thread-safe golang-lru cache.
package bags

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/bagraph/bagrule"
	"github.com/katalvlaran/bagraph/core"
	"github.com/katalvlaran/bagraph/dfs"
)

// Graph is the containment graph of a rule set.
type Graph struct {
	g    *core.Graph
	bags map[string]bagrule.Bag
	memo *lru.Cache[string, int64] // nil when disabled
}

// New builds a Graph from parsed bags.
//
// Implementation:
//   - Stage 1: Register every color; a second definition fails with ErrDuplicateColor.
//   - Stage 2: Add one edge per rule; a rule naming an undefined color fails
//     with *LookupError, a non-positive count with bagrule.ErrBadCount.
//   - Stage 3: Allocate the content memo when CacheSize > 0.
//
// Errors:
//   - ErrDuplicateColor, *LookupError, bagrule.ErrBadCount, ErrOptionViolation,
//     core.ErrEmptyVertexID (empty color).
//
// Complexity:
//   - Time O(B + R), Space O(B + R).
func New(bags []bagrule.Bag, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.CacheSize < 0 {
		return nil, fmt.Errorf("%w: cache size %d", ErrOptionViolation, o.CacheSize)
	}

	bg := &Graph{
		g: core.NewGraph(
			core.WithDirected(true),
			core.WithWeighted(),
			core.WithMultiEdges(),
			core.WithLoops(),
		),
		bags: make(map[string]bagrule.Bag, len(bags)),
	}

	for _, b := range bags {
		if _, dup := bg.bags[b.Color]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColor, b.Color)
		}
		if err := bg.g.AddVertex(b.Color); err != nil {
			return nil, fmt.Errorf("bags: New: %w", err)
		}
		bg.bags[b.Color] = b
	}

	for _, b := range bags {
		for _, r := range b.Rules {
			if _, ok := bg.bags[r.Color]; !ok {
				return nil, &LookupError{Color: r.Color, ReferencedBy: b.Color}
			}
			if r.Count <= 0 {
				return nil, fmt.Errorf("bags: rule %q -> %q: %w", b.Color, r.Color, bagrule.ErrBadCount)
			}
			if _, err := bg.g.AddEdge(b.Color, r.Color, int64(r.Count)); err != nil {
				return nil, fmt.Errorf("bags: rule %q -> %q: %w", b.Color, r.Color, err)
			}
		}
	}

	if o.CacheSize > 0 {
		memo, err := lru.New[string, int64](o.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("bags: New: %w", err)
		}
		bg.memo = memo
	}

	s := bg.Stats()
	o.Logger.Debug("bags: graph built",
		"bags", s.Bags, "rules", s.Rules, "leaves", s.Leaves, "held", s.Held, "cache", o.CacheSize)

	return bg, nil
}

// Colors returns every defined color, sorted.
func (bg *Graph) Colors() []string {
	return bg.g.Vertices()
}

// Bag returns the parsed definition of color.
func (bg *Graph) Bag(color string) (bagrule.Bag, error) {
	b, ok := bg.bags[color]
	if !ok {
		return bagrule.Bag{}, &LookupError{Color: color}
	}
	b.Rules = append([]bagrule.Rule(nil), b.Rules...)

	return b, nil
}

// Stats reports the size of the graph and of the content memo.
// A leaf is a color with no outgoing containment edge.
//
// Complexity:
//   - Time O(B + R), Space O(B).
func (bg *Graph) Stats() Stats {
	gs := bg.g.Stats()
	s := Stats{Bags: gs.VertexCount, Rules: gs.EdgeCount, Held: gs.TotalWeight}
	for _, color := range bg.g.Vertices() {
		if _, out, _, err := bg.g.Degree(color); err == nil && out == 0 {
			s.Leaves++
		}
	}
	if bg.memo != nil {
		s.Cached = bg.memo.Len()
	}

	return s
}

// Cycles lists every containment cycle closed by a DFS back edge, each
// rotated to start at its smallest color. A rule set without cycles
// returns nil.
func (bg *Graph) Cycles() ([][]string, error) {
	_, cycles, err := dfs.DetectCycles(bg.g)
	if err != nil {
		return nil, fmt.Errorf("bags: Cycles: %w", err)
	}

	return cycles, nil
}

// lookup returns a *LookupError unless color is defined.
func (bg *Graph) lookup(color string) error {
	if _, ok := bg.bags[color]; !ok {
		return &LookupError{Color: color}
	}

	return nil
}
