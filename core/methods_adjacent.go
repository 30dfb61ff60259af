// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, InNeighbors, InNeighborIDs)
//       and the adjacency bucket helper.
// Determinism:
//   - Neighbors()/InNeighbors() sort by Edge.ID (insertion order).
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns the edges leaving id, in insertion order.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id (outgoing edges).
//   - Undirected edges: every incident edge (mirrored adjacency); self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
//
// Notes:
//   - Returned *Edge values are live catalog entries; treat them as immutable.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	return g.collect(id, g.adjacencyList, func(e *Edge) bool {
		return !e.Directed || e.From == id
	})
}

// InNeighbors returns the edges entering id, in insertion order.
// For undirected graphs this is the same set as Neighbors.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) InNeighbors(id string) ([]*Edge, error) {
	if !g.directed {
		return g.Neighbors(id)
	}

	return g.collect(id, g.incoming, func(e *Edge) bool {
		return e.To == id
	})
}

// collect gathers the edges indexed under index[id], keeping those accepted by keep.
func (g *Graph) collect(
	id string,
	index map[string]map[string]map[string]struct{},
	keep func(*Edge) bool,
) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range index[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() || !keep(e) {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable from id over one
// edge, sorted lexicographically ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return uniqueEnds(edges, id), nil
}

// InNeighborIDs returns the unique set of vertex IDs with an edge into id,
// sorted lexicographically ascending.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	edges, err := g.InNeighbors(id)
	if err != nil {
		return nil, err
	}

	return uniqueEnds(edges, id), nil
}

// uniqueEnds returns the sorted set of endpoints opposite to id.
func uniqueEnds(edges []*Edge, id string) []string {
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		switch {
		case e.From == id:
			seen[e.To] = struct{}{}
		case e.To == id:
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}

// ensureAdjacency guarantees that index[from] and index[from][to] are initialized.
// Must be called ONLY under muEdgeAdj write lock (or on a graph not yet shared).
func ensureAdjacency(index map[string]map[string]map[string]struct{}, from, to string) {
	if index[from] == nil {
		index[from] = make(map[string]map[string]struct{})
	}
	if index[from][to] == nil {
		index[from][to] = make(map[string]struct{})
	}
}
