package bags

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/bagraph/ctxlog"
	"github.com/katalvlaran/bagraph/dfs"
)

// CountContentsOf returns how many bags one bag of color holds in total:
//
//	count(c) = Σ n_i + n_i·count(c_i)   over the rules (n_i, c_i) of c
//
// A leaf holds 0. The outer bag is not counted.
//
// Implementation:
//   - Stage 1: Serve the answer from the memo when present.
//   - Stage 2: Iterative DFS from color with WithFailOnCycle. Children found
//     in the memo are not descended into.
//   - Stage 3: On post-order exit of v every child total is known, so
//     count(v) is folded once, stored for this query and in the memo.
//
// Errors:
//   - *LookupError if color is not defined.
//   - *CycleError (wraps dfs.ErrCycleDetected) if a cycle is reachable from color.
//   - ErrOverflow if the total does not fit in int64.
//   - ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(B + R) per uncached query, Space O(B).
func (bg *Graph) CountContentsOf(ctx context.Context, color string) (int64, error) {
	if err := bg.lookup(color); err != nil {
		return 0, err
	}
	log := ctxlog.FromContext(ctx)

	if v, ok := bg.cached(color); ok {
		log.Debug("bags: contents cache hit", "color", color, "total", v)
		return v, nil
	}

	totals := make(map[string]int64)
	_, err := dfs.DFS(bg.g, color,
		dfs.WithContext(ctx),
		dfs.WithFailOnCycle(),
		dfs.WithFilterNeighbor(func(id string) bool {
			if v, ok := bg.cached(id); ok {
				totals[id] = v
				return false
			}
			return true
		}),
		dfs.WithOnExit(func(id string) error {
			total, err := bg.fold(id, totals)
			if err != nil {
				return err
			}
			totals[id] = total
			if bg.memo != nil {
				bg.memo.Add(id, total)
			}
			return nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("bags: contents of %q: %w", color, err)
	}

	log.Debug("bags: contents counted", "color", color, "total", totals[color], "computed", len(totals))

	return totals[color], nil
}

// fold computes count(id) from the totals of its children.
func (bg *Graph) fold(id string, totals map[string]int64) (int64, error) {
	edges, err := bg.g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, e := range edges {
		sub, ok := totals[e.To]
		if !ok {
			return 0, fmt.Errorf("bags: %q folded before %q", id, e.To)
		}
		// each edge contributes n + n·sub = n·(sub+1)
		if sub == math.MaxInt64 {
			return 0, ErrOverflow
		}
		step, ok := mulInt64(e.Weight, sub+1)
		if !ok || total > math.MaxInt64-step {
			return 0, ErrOverflow
		}
		total += step
	}

	return total, nil
}

// ContentsOf returns, for one bag of color, how many bags of every other
// color it holds. Values sum to CountContentsOf(ctx, color); colors that
// never occur inside are absent.
//
// Implementation:
//   - DFS from color with WithFailOnCycle; reversed post-order is a
//     topological order of the reachable sub-graph.
//   - Multiplicities are pushed down in that order: mult(color) = 1 and
//     mult(w) += mult(v)·n for every rule v→w with count n.
//
// Errors:
//   - Same as CountContentsOf.
func (bg *Graph) ContentsOf(ctx context.Context, color string) (map[string]int64, error) {
	if err := bg.lookup(color); err != nil {
		return nil, err
	}

	res, err := dfs.DFS(bg.g, color, dfs.WithContext(ctx), dfs.WithFailOnCycle())
	if err != nil {
		return nil, fmt.Errorf("bags: contents of %q: %w", color, err)
	}

	mult := map[string]int64{color: 1}
	for i := len(res.Order) - 1; i >= 0; i-- {
		v := res.Order[i]
		edges, err := bg.g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("bags: contents of %q: %w", color, err)
		}
		for _, e := range edges {
			step, ok := mulInt64(mult[v], e.Weight)
			if !ok || mult[e.To] > math.MaxInt64-step {
				return nil, fmt.Errorf("bags: contents of %q: %w", color, ErrOverflow)
			}
			mult[e.To] += step
		}
	}
	delete(mult, color)

	ctxlog.FromContext(ctx).Debug("bags: contents broken down", "color", color, "colors", len(mult))

	return mult, nil
}

// cached returns the memoized total of color, if any.
func (bg *Graph) cached(color string) (int64, bool) {
	if bg.memo == nil {
		return 0, false
	}

	return bg.memo.Get(color)
}

// mulInt64 returns a·b and whether it fits in int64. Both operands are non-negative.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}

	return a * b, true
}
