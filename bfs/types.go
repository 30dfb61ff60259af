package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNoPath is returned by PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option adjusts a single BFS run.
type Option func(*BFSOptions)

// BFSOptions collects what a BFS run may be told.
type BFSOptions struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// FilterNeighbor decides whether the edge curr→neighbor is followed.
	// It is consulted for every edge of a dequeued vertex, so it also sees
	// edges into vertices that are already discovered.
	FilterNeighbor func(curr, neighbor string) bool

	// Reverse follows edges from head to tail. Ignored on undirected graphs.
	Reverse bool
}

// DefaultOptions follows every edge forward under context.Background().
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext stops the walk with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFilterNeighbor installs fn as the edge filter. A nil fn is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithReverse walks predecessors instead of successors: starting at v it
// discovers every vertex with a directed path into v.
func WithReverse() Option {
	return func(o *BFSOptions) { o.Reverse = true }
}

// BFSResult is what a walk discovered.
//
// Order lists vertices as they were dequeued, start first. Depth holds the
// hop count from the start, Parent the vertex each one was discovered from;
// the start has no Parent entry.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo returns the discovery chain start, ..., dest following Parent links.
// In a reverse walk each step goes from a vertex to one of its predecessors.
//
// Errors:
//   - ErrNoPath if dest was not discovered.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}

	path := make([]string, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
