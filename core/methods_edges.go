// File: methods_edges.go
// Role: Graph construction and edge lifecycle: NewGraph/NewEmptyGraph/AddEdge,
//       lookups (Edge/HasEdge/Edges/Specs/UnknownEdges) and SetWeight.
// Determinism:
//   - Edges(), Specs() and UnknownEdges() follow input order (Edge.ID asc).
// Validation:
//   - Every mutator validates fully before touching any state.

package core

import "fmt"

// NewEmptyGraph returns a graph with n nodes and no edges.
//
// Errors:
//   - ErrInvalidGraph if n < 0.
//
// Complexity: O(n).
func NewEmptyGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: node count %d is negative", ErrInvalidGraph, n)
	}

	return &Graph{
		n:         n,
		edges:     make([]*Edge, 0),
		adjacency: make([][]*Edge, n),
		pairs:     make(map[[2]int]*Edge),
	}, nil
}

// NewGraph builds a graph with n nodes from specs, in order.
//
// Construction is all-or-nothing: on the first invalid spec the error is
// returned together with a nil graph.
//
// Errors:
//   - ErrInvalidGraph (wrapped with the offending spec index) for a negative
//     node count, out-of-range endpoint, self-loop, duplicate edge or
//     negative weight other than Unknown.
//
// Complexity: O(n + len(specs)).
func NewGraph(n int, specs []EdgeSpec) (*Graph, error) {
	g, err := NewEmptyGraph(n)
	if err != nil {
		return nil, err
	}
	for i, s := range specs {
		if _, err = g.AddEdge(s.From, s.To, s.Weight); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// AddEdge appends the undirected edge (from, to, weight) and returns its ID.
//
// Steps:
//  1. Validate endpoints are in [0, n) and distinct.
//  2. Validate weight is non-negative or Unknown.
//  3. Reject a duplicate of an existing edge in either orientation.
//  4. Append to the catalog and to both adjacency lists.
//
// The graph is unchanged when an error is returned.
func (g *Graph) AddEdge(from, to int, weight int64) (int, error) {
	if err := g.checkNode(from); err != nil {
		return -1, err
	}
	if err := g.checkNode(to); err != nil {
		return -1, err
	}
	if from == to {
		return -1, fmt.Errorf("%w: self-loop on node %d", ErrInvalidGraph, from)
	}
	if err := checkWeight(weight); err != nil {
		return -1, fmt.Errorf("%w (edge %d-%d)", err, from, to)
	}
	key := pairKey(from, to)
	if _, dup := g.pairs[key]; dup {
		return -1, fmt.Errorf("%w: duplicate edge %d-%d", ErrInvalidGraph, from, to)
	}

	e := &Edge{ID: len(g.edges), From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.pairs[key] = e
	g.adjacency[from] = append(g.adjacency[from], e)
	g.adjacency[to] = append(g.adjacency[to], e)

	return e.ID, nil
}

// SetWeight replaces the weight of edge id. Because both adjacency entries
// share one *Edge, the change is visible from both endpoints at once.
//
// Errors:
//   - ErrInvalidGraph if id is unknown or weight is negative and not Unknown.
func (g *Graph) SetWeight(id int, weight int64) error {
	if id < 0 || id >= len(g.edges) {
		return fmt.Errorf("%w: edge id %d not in [0, %d)", ErrInvalidGraph, id, len(g.edges))
	}
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("%w (edge id %d)", err, id)
	}
	g.edges[id].Weight = weight

	return nil
}

// Order returns the number of nodes n.
func (g *Graph) Order() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether v is in [0, n).
func (g *Graph) HasNode(v int) bool { return v >= 0 && v < g.n }

// Edge returns the edge with the given ID, or nil.
func (g *Graph) Edge(id int) *Edge {
	if id < 0 || id >= len(g.edges) {
		return nil
	}

	return g.edges[id]
}

// Between returns the edge joining u and v in either orientation, or nil.
func (g *Graph) Between(u, v int) *Edge {
	return g.pairs[pairKey(u, v)]
}

// Weight returns the weight of the u-v edge as seen from u.
func (g *Graph) Weight(u, v int) (int64, bool) {
	for _, e := range g.adjacency[u] {
		if e.Other(u) == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// Edges returns the live edges in input order. Treat them as read-only and
// mutate through SetWeight.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Specs returns a snapshot of all edges as caller-facing triples, in input order.
func (g *Graph) Specs() []EdgeSpec {
	out := make([]EdgeSpec, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Spec()
	}

	return out
}

// UnknownEdges returns the IDs of edges whose weight is still Unknown,
// in input order.
func (g *Graph) UnknownEdges() []int {
	var ids []int
	for _, e := range g.edges {
		if e.IsUnknown() {
			ids = append(ids, e.ID)
		}
	}

	return ids
}

func (g *Graph) checkNode(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: node %d not in [0, %d)", ErrInvalidGraph, v, g.n)
	}

	return nil
}

func checkWeight(w int64) error {
	if w < 0 && w != Unknown {
		return fmt.Errorf("%w: negative weight %d", ErrInvalidGraph, w)
	}

	return nil
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
