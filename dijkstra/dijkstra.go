// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// It processes nodes in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - core.Unknown edges cost Options.UnknownWeight (1 by default).
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/netfeas/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be in [0, n) (ErrSourceOutOfRange, matches core.ErrInvalidGraph).
//  3. No edge may have a negative weight other than core.Unknown (ErrNegativeWeight).
//
// The graph is only read. Calling Dijkstra twice on an unchanged graph with
// the same options yields identical results.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate Source
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: node %d, graph order %d", ErrSourceOutOfRange, cfg.Source, g.Order())
	}

	// 4) Pre-scan edges for negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 && !e.IsUnknown() {
			return nil, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare state.
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 6) Run.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within Dijkstra
	options Options
	dist    []int64 // node → current best distance from Source
	prev    []int   // node → predecessor on the shortest path
	visited []bool  // node → distance finalized
	pq      nodePQ
}

// init sets every distance to Infinity, predecessors to NoPredecessor,
// and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: pop the closest unfinished node, finalize it and
// relax its edges. It stops when the heap empties or the next distance
// exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.Other(u)
		w := r.cost(e)

		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		// Overflow guard for huge weights.
		if newDist < r.dist[u] {
			continue
		}
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal-cost alternatives keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// cost returns the effective traversal cost of e.
func (r *runner) cost(e *core.Edge) int64 {
	if e.IsUnknown() {
		return r.options.UnknownWeight
	}

	return e.Weight
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist; ties pop the lower id
// first so runs are reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
