package bags

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/bagraph/bfs"
	"github.com/katalvlaran/bagraph/ctxlog"
)

// CountContainersOf returns how many distinct colors can eventually hold
// target, directly or through any chain of bags.
//
// target itself is counted only when it can hold itself, i.e. it lies on a
// containment cycle. Cycles never prevent termination.
//
// Errors:
//   - *LookupError if target is not defined.
//   - ctx.Err() on cancellation.
func (bg *Graph) CountContainersOf(ctx context.Context, target string) (int, error) {
	cs, err := bg.ContainersOf(ctx, target)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}

// ContainersOf returns the colors counted by CountContainersOf, sorted by
// Depth and then by Color.
//
// Complexity:
//   - Time O(B + R log R) (sorted neighbor lists), Space O(B).
func (bg *Graph) ContainersOf(ctx context.Context, target string) ([]Container, error) {
	if err := bg.lookup(target); err != nil {
		return nil, err
	}
	up, err := bg.walkUp(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("bags: containers of %q: %w", target, err)
	}

	res := up.res
	out := make([]Container, 0, len(res.Order))
	for _, c := range res.Order[1:] {
		out = append(out, Container{Color: c, Depth: res.Depth[c]})
	}
	if up.loop != "" {
		out = append(out, Container{Color: target, Depth: res.Depth[up.loop] + 1})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		return out[i].Color < out[j].Color
	})

	ctxlog.FromContext(ctx).Debug("bags: containers resolved",
		"target", target, "count", len(out), "self", up.loop != "")

	return out, nil
}

// ContainmentPath returns a shortest chain of bags outer, ..., inner in
// which every color directly holds the next one. When outer == inner the
// chain is the shortest cycle through it, [inner, ..., inner].
//
// Errors:
//   - *LookupError if either color is not defined.
//   - ErrNotContained if no chain of rules puts inner inside outer.
//   - ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(B + R log R), Space O(B).
func (bg *Graph) ContainmentPath(ctx context.Context, outer, inner string) ([]string, error) {
	for _, c := range []string{outer, inner} {
		if err := bg.lookup(c); err != nil {
			return nil, err
		}
	}
	up, err := bg.walkUp(ctx, inner)
	if err != nil {
		return nil, fmt.Errorf("bags: path %q -> %q: %w", outer, inner, err)
	}

	// The reverse walk runs inner → container → ... so it is read backwards.
	last := outer
	if outer == inner {
		last = up.loop
	}
	walk, err := up.res.PathTo(last)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, fmt.Errorf("%w: %q in %q", ErrNotContained, inner, outer)
	}
	if err != nil {
		return nil, fmt.Errorf("bags: path %q -> %q: %w", outer, inner, err)
	}

	path := make([]string, 0, len(walk)+1)
	if outer == inner {
		path = append(path, inner)
	}
	for i := len(walk) - 1; i >= 0; i-- {
		path = append(path, walk[i])
	}

	ctxlog.FromContext(ctx).Debug("bags: path resolved",
		"outer", outer, "inner", inner, "steps", len(path)-1)

	return path, nil
}

// upward is a reverse BFS from one color.
type upward struct {
	res *bfs.BFSResult
	// loop is the nearest discovered color that the start color itself
	// holds, so start → loop → ... → start closes a cycle. Empty when the
	// start lies on no cycle.
	loop string
}

// walkUp runs a BFS from target over incoming edges (contained → container),
// so each container is reached once at its shortest containment depth.
// The neighbor filter sees every edge, including edges into visited
// vertices; the first edge leading back into target is recorded in loop.
// target must be defined.
func (bg *Graph) walkUp(ctx context.Context, target string) (upward, error) {
	var up upward
	res, err := bfs.BFS(bg.g, target,
		bfs.WithContext(ctx),
		bfs.WithReverse(),
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			if nbr == target && up.loop == "" {
				up.loop = curr
			}
			return true
		}),
	)
	if err != nil {
		return upward{}, err
	}
	up.res = res

	return up, nil
}
