// File: methods_clone.go
// Role: Cloning and weight snapshots.
// Determinism:
//   - Clone preserves edge IDs and adjacency order exactly.

package core

import "fmt"

// CloneEmpty returns a graph with the same node count and no edges.
//
// Complexity: O(n).
func (g *Graph) CloneEmpty() *Graph {
	return &Graph{
		n:         g.n,
		edges:     make([]*Edge, 0, len(g.edges)),
		adjacency: make([][]*Edge, g.n),
		pairs:     make(map[[2]int]*Edge, len(g.pairs)),
	}
}

// Clone returns a deep copy: new *Edge values, same IDs, same adjacency order.
// Mutating the clone never affects g.
//
// Complexity: O(n + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for _, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		clone.edges = append(clone.edges, ne)
		clone.pairs[pairKey(ne.From, ne.To)] = ne
	}
	for v, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		clone.adjacency[v] = make([]*Edge, len(list))
		for i, e := range list {
			clone.adjacency[v][i] = clone.edges[e.ID]
		}
	}

	return clone
}

// Weights returns the current weight of every edge indexed by Edge.ID.
func (g *Graph) Weights() []int64 {
	out := make([]int64, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Weight
	}

	return out
}

// ApplyWeights overwrites every edge weight from w (indexed by Edge.ID).
//
// All values are validated first; on error no edge is modified.
func (g *Graph) ApplyWeights(w []int64) error {
	if len(w) != len(g.edges) {
		return fmt.Errorf("%w: %d weights for %d edges", ErrInvalidGraph, len(w), len(g.edges))
	}
	for i, x := range w {
		if err := checkWeight(x); err != nil {
			return fmt.Errorf("%w (edge id %d)", err, i)
		}
	}
	for i, x := range w {
		g.edges[i].Weight = x
	}

	return nil
}
