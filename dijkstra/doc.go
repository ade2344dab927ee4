// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// integer-indexed core.Graph, including graphs that still carry
// under-construction (core.Unknown) edges.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - core.Unknown edges are charged a provisional cost (WithUnknownWeight, default 1);
//     the graph itself is never modified.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - Result carries both the distance table and the predecessor table;
//     Result.PathTo rebuilds a path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         nil *core.Graph.
//   - ErrSourceOutOfRange: source outside [0, n); errors.Is(err, core.ErrInvalidGraph) holds.
//   - ErrNegativeWeight:   negative explicit weight (fast O(E) pre-scan).
//   - ErrBadMaxDistance, ErrBadInfThreshold, ErrBadUnknownWeight: option misuse (panic).
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - Result.Dist[v]: minimal distance from Source to v, or Infinity if unreachable.
//	  - Result.Prev[v]: predecessor of v on one shortest path, or NoPredecessor.
//
// Thread safety:
//
//   - Dijkstra only reads g, but core.Graph has no locks: do not mutate g concurrently.
package dijkstra
