// Package core provides the small in-memory models shared by the network
// feasibility algorithms: an undirected weighted Graph over integer nodes and
// a disjoint-set Partition.
//
// Graph
//
//   - Nodes are integers in [0, n); n is fixed by NewGraph / NewEmptyGraph.
//   - Edges are undirected and kept in input order; Edge.ID is the position.
//   - A weight is either non-negative or Unknown (-1, "under construction").
//   - Each edge is stored once and referenced from both endpoints, so
//     weight(u,v) == weight(v,u) holds after every SetWeight/ApplyWeights.
//   - Construction rejects out-of-range endpoints, self-loops, duplicate
//     edges and negative explicit weights with ErrInvalidGraph.
//
// Partition
//
//   - parent/rank arrays with iterative path compression and union by rank.
//   - Union on an already-joined pair returns false and changes nothing.
//   - Indices outside [0, n) return ErrIndexOutOfRange.
//
// Thread safety:
//
//	Neither type locks internally. Use one instance per goroutine or guard
//	it externally.
//
// Example:
//
//	g, err := core.NewGraph(3, []core.EdgeSpec{
//	    {From: 0, To: 1, Weight: 2},
//	    {From: 1, To: 2, Weight: core.Unknown},
//	})
package core
