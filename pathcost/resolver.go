package pathcost

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/netfeas/core"
	"github.com/katalvlaran/netfeas/dijkstra"
)

// Resolver computes shortest paths over graphs with Unknown edges and picks
// concrete weights for those edges so that one source→destination shortest
// path hits an exact target. A Resolver holds no per-graph state and may be
// reused; the graphs it mutates are not locked.
type Resolver struct {
	opts Options
	log  *zap.Logger
}

// New returns a Resolver configured by opts.
func New(opts ...Option) *Resolver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Resolver{opts: cfg, log: cfg.Logger.Named("pathcost")}
}

// Options returns the effective configuration.
func (r *Resolver) Options() Options { return r.opts }

// ShortestDistances runs Dijkstra from source, charging the placeholder for
// every Unknown edge. The graph is not modified.
//
// Errors:
//   - ErrInvalidGraph if g is nil or source is outside [0, n).
func (r *Resolver) ShortestDistances(g *core.Graph, source int) (*dijkstra.Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidGraph)
	}
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(source), dijkstra.WithUnknownWeight(r.opts.Placeholder))
	if err != nil {
		return nil, err
	}
	if ce := r.log.Check(zap.DebugLevel, "shortest distances"); ce != nil {
		ce.Write(zap.Int("source", source), zap.Int64s("dist", res.Dist))
	}

	return res, nil
}

// ResolveTargetCost assigns a concrete weight to every Unknown edge of g so
// that the shortest path from source to destination costs exactly targetCost.
//
// Steps:
//  1. Validate endpoints and target.
//  2. Baseline: shortest distance with Unknown edges at the placeholder.
//  3. delta = targetCost - baseline; negative delta is infeasible.
//  4. delta == 0: every Unknown edge gets the placeholder.
//  5. Otherwise the configured Strategy distributes delta.
//  6. Recompute and verify dist[destination] == targetCost.
//
// All work happens on a clone; g is rewritten only on success, so a failed
// call leaves every weight untouched.
//
// Errors:
//   - ErrInvalidGraph for a nil graph or out-of-range endpoints.
//   - ErrInfeasibleTarget for a negative target, an unreachable destination,
//     a baseline above the target, or a gap the Strategy cannot place.
func (r *Resolver) ResolveTargetCost(g *core.Graph, source, destination int, targetCost int64) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidGraph)
	}
	if !g.HasNode(source) || !g.HasNode(destination) {
		return fmt.Errorf("%w: route %d→%d outside [0, %d)", ErrInvalidGraph, source, destination, g.Order())
	}
	if targetCost < 0 {
		return fmt.Errorf("%w: negative target %d", ErrInfeasibleTarget, targetCost)
	}

	work := g.Clone()
	r.logGraph(work)

	base, err := r.ShortestDistances(work, source)
	if err != nil {
		return err
	}
	if !base.Reachable(destination) {
		return fmt.Errorf("%w: node %d unreachable from %d", ErrInfeasibleTarget, destination, source)
	}
	baseline := base.Dist[destination]
	delta := targetCost - baseline
	r.log.Debug("baseline computed",
		zap.Int64("baseline", baseline),
		zap.Int64("target", targetCost),
		zap.Int64("delta", delta),
	)
	if delta < 0 {
		return fmt.Errorf("%w: shortest path is already %d > %d", ErrInfeasibleTarget, baseline, targetCost)
	}

	unknown := work.UnknownEdges()
	switch {
	case delta == 0:
		err = r.fill(work, unknown, r.opts.Placeholder)
	case len(unknown) == 0:
		err = fmt.Errorf("%w: no unknown edge can absorb %d", ErrInfeasibleTarget, delta)
	case delta > dijkstra.Infinity-r.opts.Placeholder:
		err = fmt.Errorf("%w: gap %d overflows edge weight", ErrInfeasibleTarget, delta)
	case r.opts.Strategy == StrategySaturate:
		err = r.saturate(work, unknown, source, destination, targetCost)
	default:
		err = r.firstUnknown(work, unknown, source, destination, targetCost, delta)
	}
	if err != nil {
		return err
	}

	if err = r.verify(work, source, destination, targetCost); err != nil {
		return err
	}
	if err = g.ApplyWeights(work.Weights()); err != nil {
		return err
	}
	if ce := r.log.Check(zap.DebugLevel, "resolved roads"); ce != nil {
		ce.Write(zap.Int64s("weights", g.Weights()))
	}

	return nil
}

// ResolveEdges is the slice-in, slice-out form of ResolveTargetCost: it
// builds a graph of n nodes from specs, resolves it and returns every edge
// with a concrete weight, in input order. specs is not modified.
func (r *Resolver) ResolveEdges(n int, specs []core.EdgeSpec, source, destination int, targetCost int64) ([]core.EdgeSpec, error) {
	g, err := core.NewGraph(n, specs)
	if err != nil {
		return nil, err
	}
	if err = r.ResolveTargetCost(g, source, destination, targetCost); err != nil {
		return nil, err
	}

	return g.Specs(), nil
}

// firstUnknown gives each candidate edge in input order the chance to
// absorb delta while every other Unknown edge sits at the placeholder.
func (r *Resolver) firstUnknown(work *core.Graph, unknown []int, source, destination int, target, delta int64) error {
	p := r.opts.Placeholder
	if err := r.fill(work, unknown, p); err != nil {
		return err
	}
	for _, id := range unknown {
		if err := work.SetWeight(id, p+delta); err != nil {
			return err
		}
		d, err := r.distance(work, source, destination)
		if err != nil {
			return err
		}
		if d == target {
			r.log.Debug("designated edge", zap.Int("edge", id), zap.Int64("weight", p+delta))
			return nil
		}
		r.log.Debug("edge cannot absorb gap", zap.Int("edge", id), zap.Int64("distance", d))
		if err = work.SetWeight(id, p); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: no single unknown edge can absorb %d", ErrInfeasibleTarget, delta)
}

// saturate holds every Unknown edge at target, then lowers them to the
// placeholder one at a time. Lowered edges keep the placeholder; the first
// one that brings the distance to at most target is raised by the gap.
func (r *Resolver) saturate(work *core.Graph, unknown []int, source, destination int, target int64) error {
	p := r.opts.Placeholder
	if err := r.fill(work, unknown, target); err != nil {
		return err
	}
	for _, id := range unknown {
		if err := work.SetWeight(id, p); err != nil {
			return err
		}
		d, err := r.distance(work, source, destination)
		if err != nil {
			return err
		}
		if d <= target {
			w := p + target - d
			r.log.Debug("designated edge", zap.Int("edge", id), zap.Int64("weight", w))
			return work.SetWeight(id, w)
		}
	}

	return fmt.Errorf("%w: releasing every unknown edge never reaches %d", ErrInfeasibleTarget, target)
}

func (r *Resolver) fill(work *core.Graph, ids []int, w int64) error {
	for _, id := range ids {
		if err := work.SetWeight(id, w); err != nil {
			return err
		}
	}

	return nil
}

func (r *Resolver) distance(g *core.Graph, source, destination int) (int64, error) {
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(source), dijkstra.WithUnknownWeight(r.opts.Placeholder))
	if err != nil {
		return 0, err
	}

	return res.Dist[destination], nil
}

func (r *Resolver) verify(work *core.Graph, source, destination int, target int64) error {
	if ids := work.UnknownEdges(); len(ids) > 0 {
		return fmt.Errorf("%w: edges %v still unknown", ErrInfeasibleTarget, ids)
	}
	d, err := r.distance(work, source, destination)
	if err != nil {
		return err
	}
	if d != target {
		return fmt.Errorf("%w: resolved distance %d, want %d", ErrInfeasibleTarget, d, target)
	}

	return nil
}

func (r *Resolver) logGraph(g *core.Graph) {
	if !r.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	for v := 0; v < g.Order(); v++ {
		ids, _ := g.NeighborIDs(v)
		r.log.Debug("adjacency", zap.Int("node", v), zap.Ints("neighbors", ids))
	}
}
