// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Degree, NeighborIDs).
// Determinism:
//   - Neighbors() returns edges in insertion order (Edge.ID asc).

package core

import "fmt"

// Neighbors returns the edges incident to v, in input order.
//
// Each undirected edge appears once per endpoint; use e.Other(v) to obtain
// the adjacent node. The returned slice is a copy; the *Edge values are live.
//
// Errors:
//   - ErrInvalidGraph if v is outside [0, n).
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]*Edge, error) {
	if !g.HasNode(v) {
		return nil, fmt.Errorf("%w: node %d not in [0, %d)", ErrInvalidGraph, v, g.n)
	}
	out := make([]*Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// NeighborIDs returns the nodes adjacent to v, in edge input order.
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	edges, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.Other(v)
	}

	return ids, nil
}

// Degree returns the number of edges incident to v (0 for out-of-range v).
func (g *Graph) Degree(v int) int {
	if !g.HasNode(v) {
		return 0
	}

	return len(g.adjacency[v])
}
