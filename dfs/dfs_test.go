package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bagraph/core"
	"github.com/katalvlaran/bagraph/dfs"
)

// buildChain creates a directed chain graph of length n: N0→N1→…→N(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 0)
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1).
// IDs: "T-1","T-2",…,"T-N".
func buildBinaryTree(depth int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	maxD := (1 << depth) - 1
	for i := 1; i <= maxD; i++ {
		id := fmt.Sprintf("T-%d", i)
		_ = g.AddVertex(id)
		if i > 1 {
			_, _ = g.AddEdge(fmt.Sprintf("T-%d", i/2), id, 0)
		}
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("X"))

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	edgeID, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, edgeID)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)

	_, err = dfs.DFS(g, "A", dfs.WithFailOnCycle())
	var ce *dfs.CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"A", "A"}, ce.Path)
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := buildChain(3)

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N1", "N0"}, res.Order)
	assert.Equal(t, "N1", res.Parent["N2"])
	assert.Equal(t, 2, res.Depth["N2"])
}

func TestDFS_SharedChildVisitedOnce(t *testing.T) {
	// A→B, A→C, B→D, C→D: D is reached twice but finishes once.
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("C", "D", 0)

	res, err := dfs.DFS(g, "A", dfs.WithFailOnCycle())
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
}

func TestDFS_FailOnCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	// cycles are tolerated by default
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)

	_, err = dfs.DFS(g, "A", dfs.WithFailOnCycle())
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	var ce *dfs.CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"A", "B", "C", "A"}, ce.Path)
	assert.Equal(t, "dfs: cycle detected: A -> B -> C -> A", ce.Error())
}

func TestDFS_FailOnCycle_UndirectedTreeEdge(t *testing.T) {
	// The edge back to the parent is not a cycle in an undirected graph.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	_, err := dfs.DFS(g, "A", dfs.WithFailOnCycle())
	assert.NoError(t, err)

	_, _ = g.AddEdge("C", "A", 0)
	_, err = dfs.DFS(g, "A", dfs.WithFailOnCycle())
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestDFS_Disconnected(t *testing.T) {
	g := buildChain(2)
	require.NoError(t, g.AddVertex("C"))

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0"}, res.Order)
	assert.False(t, res.Visited["C"], "disconnected vertex should not be visited")

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "N1", "N0"}, res.Order)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(3)

	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0"}, res.Order)
	assert.False(t, res.Visited["N1"])

	res, err = dfs.DFS(g, "N0", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnExitError(t *testing.T) {
	g := buildChain(2)

	res, err := dfs.DFS(g, "N0", dfs.WithOnExit(func(id string) error {
		if id == "N1" {
			return errors.New("halt on exit")
		}

		return nil
	}))
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for \"N1\"")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_OnExitSeesFinishedChildren(t *testing.T) {
	g := buildBinaryTree(3)
	done := make(map[string]bool)

	_, err := dfs.DFS(g, "T-1", dfs.WithOnExit(func(id string) error {
		n, _ := strconv.Atoi(id[2:])
		for _, c := range []int{2 * n, 2*n + 1} {
			if c <= 7 && !done[fmt.Sprintf("T-%d", c)] {
				return fmt.Errorf("child T-%d of %s not finished", c, id)
			}
		}
		done[id] = true

		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, done, 7)
}

func TestDFS_OnVisitOnExitHooks(t *testing.T) {
	g := buildBinaryTree(3) // 7 nodes
	var pre, post []string

	res, err := dfs.DFS(g, "T-1",
		dfs.WithOnVisit(func(id string) error {
			pre = append(pre, id)
			if id == "T-4" {
				return errors.New("stop at T-4")
			}

			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			post = append(post, id)

			return nil
		}),
	)
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnVisit hook for \"T-4\"")
	assert.Equal(t, []string{"T-1", "T-2", "T-4"}, pre)
	assert.Empty(t, post)
	assert.Empty(t, res.Order)
}

func TestDFS_CancellationImmediate(t *testing.T) {
	g := buildChain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no nodes should finish when canceled immediately")
}

func TestDFS_LongChainIsIterative(t *testing.T) {
	const n = 100000
	g := buildChain(n)

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, "N0", res.Order[n-1])
	assert.Equal(t, n-1, res.Depth["N"+strconv.Itoa(n-1)])
}

func TestDFS_BinaryTree_TraversalAndVisited(t *testing.T) {
	const depth = 4 // 15 nodes
	g := buildBinaryTree(depth)
	res, err := dfs.DFS(g, "T-1")
	require.NoError(t, err)

	assert.Len(t, res.Visited, (1<<depth)-1)
	assert.Len(t, res.Order, (1<<depth)-1)
	assert.Equal(t, "T-1", res.Order[len(res.Order)-1], "root must finish last")
}
