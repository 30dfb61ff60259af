// File: methods_edges.go
// Role: Edge insertion (AddEdge), edge ordering helpers and nextEdgeID().
// Determinism:
//   - nextEdgeID() is monotonic and stable ("e" + decimal), so sorting by
//     Edge.ID restores insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically.
//  5. Store in g.edges and link adjacency.
//  6. Directed ⇒ index in incoming; undirected non-loop ⇒ mirror to→from.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrBadWeight if weight < 0, or weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed, ErrMultiEdgeNotAllowed per graph policy.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	linkEdge(g, e)

	return eid, nil
}

// linkEdge stores e in the catalog and all adjacency indexes.
// Must be called under muEdgeAdj write lock.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureAdjacency(g.adjacencyList, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}

	if e.Directed {
		ensureAdjacency(g.incoming, e.To, e.From)
		g.incoming[e.To][e.From][e.ID] = struct{}{}
		return
	}
	if e.From != e.To {
		ensureAdjacency(g.adjacencyList, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// sortEdges orders edges by insertion sequence (numeric part of Edge.ID).
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeIDLess(es[i].ID, es[j].ID) })
}

// edgeIDLess compares two generated edge IDs by their numeric suffix.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
