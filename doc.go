// Package netfeas answers two feasibility questions over small integer-indexed
// structures.
//
// Path cost:
//
//	Given an undirected road network in which some roads are still under
//	construction (weight core.Unknown), pathcost.Resolver assigns every
//	unknown road a positive weight so that the shortest route between two
//	nodes costs exactly a target, or reports ErrInfeasibleTarget.
//
// Restricted friendships:
//
//	unionfind.RestrictedUnionFind processes friend requests in order and
//	denies any request whose approval would place a restricted pair of
//	houses in the same group.
//
// Packages:
//
//	core        graph and partition models, sentinel errors
//	dijkstra    non-negative shortest paths with predecessor tracking
//	pathcost    target-cost resolution of unknown edge weights
//	unionfind   union-find with pairwise separation constraints
//	cmd/netfeas command-line host over YAML scenario files
package netfeas
