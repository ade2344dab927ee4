// Package pathcost backfills travel times for roads under construction.
//
// A road network is a core.Graph whose Unknown edges still need a weight.
// Resolver.ResolveTargetCost picks those weights so that the shortest path
// between two designated nodes costs exactly a caller-supplied target:
//
//  1. Dijkstra with every Unknown edge at the placeholder (1) gives the baseline.
//  2. delta = target - baseline. A negative delta would need a negative
//     weight and is reported as ErrInfeasibleTarget, never clamped.
//  3. delta == 0: every Unknown edge becomes the placeholder.
//  4. delta > 0: the Strategy decides which edge absorbs the gap
//     (StrategyFirstUnknown by default, StrategySaturate for completeness).
//  5. The result is re-verified with Dijkstra before it is written back.
//
// Failed calls leave the graph untouched. Narration of every step (adjacency,
// distance tables, designated edge) is available at Debug level through
// WithLogger.
//
// Example:
//
//	specs := []core.EdgeSpec{{From: 4, To: 1, Weight: core.Unknown}, ...}
//	out, err := pathcost.New().ResolveEdges(5, specs, 0, 1, 5)
package pathcost
