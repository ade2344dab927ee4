// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core.Graph.
//
// Options:
//
//	– Source:           starting node (must be in [0, n)).
//	– UnknownWeight:    cost charged for an edge whose weight is core.Unknown.
//	– MaxDistance:      optional cap on distances to explore.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrSourceOutOfRange  if Source is outside [0, n); wraps core.ErrInvalidGraph.
//	– ErrNegativeWeight    if a negative, non-Unknown weight is found.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0.
//	– ErrBadUnknownWeight  if UnknownWeight < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netfeas/core"
)

// Infinity is the distance reported for unreachable nodes.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable nodes in Result.Prev.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source node outside [0, n).
	// It wraps core.ErrInvalidGraph so callers can match either.
	ErrSourceOutOfRange = fmt.Errorf("%w: dijkstra source out of range", core.ErrInvalidGraph)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadUnknownWeight indicates a negative placeholder for Unknown edges.
	ErrBadUnknownWeight = errors.New("dijkstra: UnknownWeight must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node.
// UnknownWeight    – cost used for core.Unknown edges. Default 1.
// MaxDistance      – vertices beyond this distance are not explored. Default Infinity.
// InfEdgeThreshold – edges with weight ≥ threshold are skipped. Default Infinity.
type Options struct {
	Source           int   // starting node
	UnknownWeight    int64 // placeholder cost for Unknown edges
	MaxDistance      int64 // maximum distance to explore
	InfEdgeThreshold int64 // weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithUnknownWeight sets the cost charged for core.Unknown edges.
// Panics with ErrBadUnknownWeight on a negative value.
func WithUnknownWeight(w int64) Option {
	return func(o *Options) {
		if w < 0 {
			panic(ErrBadUnknownWeight.Error())
		}
		o.UnknownWeight = w
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value keep Infinity.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with defaults for source.
//
// Defaults:
//   - UnknownWeight:    1 (provisional cost of an under-construction edge).
//   - MaxDistance:      Infinity (explore everything reachable).
//   - InfEdgeThreshold: Infinity (no walls).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		UnknownWeight:    1,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Result is the distance table produced by one Dijkstra run.
//
// Dist[v] is the shortest distance from Source to v, or Infinity.
// Prev[v] is v's predecessor on one shortest path, or NoPredecessor.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// PathTo rebuilds the node sequence Source → … → v from Prev.
// It returns false when v is unreachable or out of range.
func (r *Result) PathTo(v int) ([]int, bool) {
	if !r.Reachable(v) {
		return nil, false
	}
	var rev []int
	for cur := v; cur != NoPredecessor; cur = r.Prev[cur] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}
	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, true
}
