// Package core defines the Graph and Partition models shared by the
// path-cost resolver and the restricted union-find.
//
// This file declares Edge, EdgeSpec, the Unknown weight sentinel, the Graph
// type and the sentinel errors.
//
// Errors:
//
//	ErrInvalidGraph     - malformed edge list, out-of-range node, negative weight.
//	ErrIndexOutOfRange  - node index outside [0, n) on a partition query.
package core

import "errors"

// Sentinel errors for core model operations.
var (
	// ErrInvalidGraph indicates a malformed graph: bad node count, out-of-range
	// endpoint, self-loop, duplicate edge or a negative explicit weight.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrIndexOutOfRange indicates a node id outside [0, n).
	ErrIndexOutOfRange = errors.New("core: node index out of range")
)

// Unknown marks an edge whose weight has not been decided yet
// ("under construction"). It is the only negative weight a Graph accepts.
const Unknown int64 = -1

// EdgeSpec is the caller-facing (from, to, weight) triple used to build a
// Graph and to report resolved weights back.
type EdgeSpec struct {
	From   int
	To     int
	Weight int64
}

// IsUnknown reports whether the spec still carries the Unknown sentinel.
func (s EdgeSpec) IsUnknown() bool { return s.Weight == Unknown }

// Edge is an undirected connection between two nodes.
//
// ID is the zero-based position of the edge in input order. The same *Edge
// is referenced from both endpoints' adjacency lists, so the weight seen
// from either side is always identical.
type Edge struct {
	// ID is the input-order index of this edge.
	ID int

	// From and To are the endpoints as supplied by the caller.
	From int
	To   int

	// Weight is a non-negative cost or Unknown.
	Weight int64
}

// IsUnknown reports whether the edge weight is still undecided.
func (e *Edge) IsUnknown() bool { return e.Weight == Unknown }

// Other returns the endpoint opposite to v.
func (e *Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Spec returns the caller-facing triple for e.
func (e *Edge) Spec() EdgeSpec {
	return EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
}

// Graph is an undirected weighted graph over nodes 0..n-1.
//
// Node count is fixed at construction. Edges are kept in input order and
// each one appears in adjacency[From] and adjacency[To] through the same
// pointer. Graph has no internal locking; confine an instance to one
// goroutine or serialize access externally.
type Graph struct {
	n         int
	edges     []*Edge
	adjacency [][]*Edge

	// pairs indexes edges by their normalized (min, max) endpoint pair.
	pairs map[[2]int]*Edge
}
