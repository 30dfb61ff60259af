package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bagraph/core"
)

// ErrNeighbors wraps a failed neighbor lookup.
var ErrNeighbors = errors.New("bfs: neighbor lookup failed")

// frontier entry: a discovered vertex waiting to be expanded.
type pending struct {
	id    string
	depth int
}

// walker holds the state of one BFS run.
type walker struct {
	ctx    context.Context
	filter func(curr, neighbor string) bool
	next   func(id string) ([]string, error) // NeighborIDs or InNeighborIDs
	queue  []pending
	res    *BFSResult
}

// BFS walks g breadth-first from startID and reports every vertex it
// reaches. Edge weights play no part; parallel edges and self-loops are
// followed once at most.
//
// Implementation:
//   - Stage 1: Validate g and startID, apply options.
//   - Stage 2: Seed the queue with startID at depth 0.
//   - Stage 3: Dequeue, check ctx, then discover every unseen neighbor the
//     filter accepts at depth+1. Neighbor IDs come sorted from core, so the
//     resulting Order is reproducible.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, ctx.Err().
//
// On error the partial result is returned alongside it.
//
// Complexity:
//   - Time O(V + E log d), Space O(V).
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		ctx:    o.Ctx,
		filter: o.FilterNeighbor,
		next:   g.NeighborIDs,
		queue:  make([]pending, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if o.Reverse {
		w.next = g.InNeighborIDs
	}

	w.discover(startID, "", 0)

	return w.res, w.run()
}

// discover records id at depth d and queues it for expansion.
func (w *walker) discover(id, from string, d int) {
	w.res.Depth[id] = d
	if from != "" {
		w.res.Parent[id] = from
	}
	w.queue = append(w.queue, pending{id: id, depth: d})
}

// run drains the queue.
func (w *walker) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		p := w.queue[head]
		w.res.Order = append(w.res.Order, p.id)

		nbrs, err := w.next(p.id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighbors, p.id, err)
		}
		for _, nbr := range nbrs {
			if !w.filter(p.id, nbr) {
				continue
			}
			if _, seen := w.res.Depth[nbr]; !seen {
				w.discover(nbr, p.id, p.depth+1)
			}
		}
	}

	return nil
}
